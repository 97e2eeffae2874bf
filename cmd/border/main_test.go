package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/border"
	"github.com/tdewolff/test"
)

func TestExpandSides(t *testing.T) {
	var tts = []struct {
		vals     []float64
		expected [4]float64
	}{
		{[]float64{1}, [4]float64{1, 1, 1, 1}},
		{[]float64{1, 2}, [4]float64{1, 2, 1, 2}},
		{[]float64{1, 2, 3}, [4]float64{1, 2, 3, 2}},
		{[]float64{1, 2, 3, 4}, [4]float64{1, 2, 3, 4}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			sides, err := expandSides(tt.vals)
			test.Error(t, err)
			test.T(t, sides, tt.expected)
		})
	}

	_, err := expandSides([]float64{})
	test.That(t, err != nil)
	_, err = expandSides([]float64{1, 2, 3, 4, 5})
	test.That(t, err != nil)
}

func TestParseWidths(t *testing.T) {
	widths, err := parseWidths("10, 4 6,8")
	test.Error(t, err)
	test.T(t, widths, []float64{10, 4, 6, 8})

	widths, err = parseWidths("1.5e1")
	test.Error(t, err)
	test.T(t, widths, []float64{15})

	_, err = parseWidths("10px")
	test.That(t, err != nil)
}

func TestParseColors(t *testing.T) {
	colors, err := parseColors(splitList("black,#f00 green"))
	test.Error(t, err)
	test.T(t, colors, []color.RGBA{border.Black, {0xff, 0x00, 0x00, 0xff}, {0x00, 0x80, 0x00, 0xff}})

	_, err = parseColors([]string{"blurple"})
	test.That(t, err != nil)
}

func TestLoadConfig(t *testing.T) {
	config, err := loadConfig("testdata/rectangle.toml")
	test.Error(t, err)
	test.String(t, config.Path, "M0 0H100V50H0Z")
	test.T(t, config.Widths, []float64{10, 4, 6, 8})
	test.T(t, config.Colors, []string{"black", "#f00", "green", "blue"})

	opts := config.Options.apply(border.DefaultOptions)
	test.That(t, opts.SplitCubics)
	test.That(t, opts.SplitQuadratics)
	test.That(t, opts.SkipZeroLength)
	test.Float(t, opts.MaxTurn, 1.5)

	_, err = loadConfig("testdata/missing.toml")
	test.That(t, err != nil)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	test.Error(t, os.WriteFile(bad, []byte("widths = ["), 0644))
	_, err = loadConfig(bad)
	test.That(t, err != nil)
}

func TestOptions(t *testing.T) {
	cmd := &Border{}
	test.T(t, cmd.options(Config{}), border.DefaultOptions)

	cmd = &Border{NoSplit: true, SplitQuadratics: true, MaxTurn: 0.5}
	opts := cmd.options(Config{})
	test.That(t, !opts.SplitCubics)
	test.That(t, opts.SplitQuadratics)
	test.Float(t, opts.MaxTurn, 0.5)
}

func TestEdges(t *testing.T) {
	cmd := &Border{}
	edges, err := cmd.edges(Config{})
	test.Error(t, err)
	test.T(t, edges[border.Left], border.Edge{Width: 1.0, Color: border.Black})

	// flags take precedence over the configuration
	cmd = &Border{Widths: "2 3"}
	edges, err = cmd.edges(Config{Widths: []float64{10}, Colors: []string{"red"}})
	test.Error(t, err)
	test.T(t, edges[border.Top], border.Edge{Width: 2.0, Color: color.RGBA{0xff, 0x00, 0x00, 0xff}})
	test.T(t, edges[border.Right], border.Edge{Width: 3.0, Color: color.RGBA{0xff, 0x00, 0x00, 0xff}})

	cmd = &Border{Widths: "1 2 3 4 5"}
	_, err = cmd.edges(Config{})
	test.That(t, err != nil)

	cmd = &Border{Colors: "red nocolor"}
	_, err = cmd.edges(Config{})
	test.That(t, err != nil)
}

func TestDump(t *testing.T) {
	edges := border.NewEdges([4]float64{10, 4, 6, 8}, [4]color.RGBA{border.Black, border.Black, border.Black, border.Black})
	outline, err := border.Analyze("M0 0H100V50H0Z", edges, border.DefaultOptions)
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, dump(buf, outline))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.T(t, len(lines), 4)
	test.String(t, lines[0], "0: L [0; 0]-[100; 0] top stroke=10 color=#000000 inner=[98; 5] outer=[102; -5]")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".svg", ".png", ".jpg", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			output := filepath.Join(dir, "border"+ext)
			cmd := &Border{Config: "testdata/rectangle.toml", Output: output, Resolution: 1.0, Margin: 1.0}
			test.Error(t, cmd.Run())

			info, err := os.Stat(output)
			test.Error(t, err)
			test.That(t, 0 < info.Size())
		})
	}

	cmd := &Border{Path: "M0 0H100V50H0Z", Output: filepath.Join(dir, "border.pdf")}
	test.That(t, cmd.Run() != nil)

	cmd = &Border{Path: "M0 0A5 5 0 0 1 10 10", Output: filepath.Join(dir, "border.svg")}
	test.That(t, cmd.Run() != nil)
}
