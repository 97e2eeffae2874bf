package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tdewolff/border"
	"github.com/tdewolff/parse/v2/strconv"
)

// Config is the TOML configuration file. Values given on the command line take precedence.
//
//	path = "M0 0H100V50H0Z"
//	widths = [10, 4, 6, 8]
//	colors = ["black", "#f00", "green", "blue"]
//
//	[options]
//	split-quadratics = true
type Config struct {
	Path    string         `toml:"path"`
	Widths  []float64      `toml:"widths"`
	Colors  []string       `toml:"colors"`
	Options *ConfigOptions `toml:"options"`
}

type ConfigOptions struct {
	SplitCubics     *bool   `toml:"split-cubics"`
	SplitQuadratics *bool   `toml:"split-quadratics"`
	SkipZeroLength  *bool   `toml:"skip-zero-length"`
	MaxTurn         float64 `toml:"max-turn"`
}

func loadConfig(filename string) (Config, error) {
	var config Config
	b, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	} else if err := toml.Unmarshal(b, &config); err != nil {
		return config, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// apply overrides opts with the values set in the configuration.
func (c *ConfigOptions) apply(opts border.Options) border.Options {
	if c == nil {
		return opts
	}
	if c.SplitCubics != nil {
		opts.SplitCubics = *c.SplitCubics
	}
	if c.SplitQuadratics != nil {
		opts.SplitQuadratics = *c.SplitQuadratics
	}
	if c.SkipZeroLength != nil {
		opts.SkipZeroLength = *c.SkipZeroLength
	}
	if c.MaxTurn != 0.0 {
		opts.MaxTurn = c.MaxTurn
	}
	return opts
}

// expandSides expands one to four values to top, right, bottom, and left like the CSS shorthand properties: one
// value sets all sides, two set top/bottom and right/left, three set top, right/left, and bottom.
func expandSides[T any](vals []T) ([4]T, error) {
	switch len(vals) {
	case 1:
		return [4]T{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]T{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return [4]T{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return [4]T{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]T{}, fmt.Errorf("expected one to four values, got %d", len(vals))
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func parseWidths(s string) ([]float64, error) {
	widths := []float64{}
	for _, field := range splitList(s) {
		f, n := strconv.ParseFloat([]byte(field))
		if n != len(field) {
			return nil, fmt.Errorf("bad width %q", field)
		}
		widths = append(widths, f)
	}
	return widths, nil
}

func parseColors(fields []string) ([]color.RGBA, error) {
	colors := []color.RGBA{}
	for _, field := range fields {
		col, err := border.ParseColor(field)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}
