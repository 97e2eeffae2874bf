package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/border"
	"github.com/tdewolff/border/rasterizer"
	"github.com/tdewolff/border/svg"
)

type Border struct {
	Widths          string  `short:"w" desc:"Widths of the top, right, bottom, and left sides (default 1)"`
	Colors          string  `short:"c" desc:"Colors of the top, right, bottom, and left sides (default black)"`
	Config          string  `desc:"TOML configuration file"`
	Output          string  `short:"o" desc:"Output filename (.svg, .png, .jpg, .gif), or a text dump to stdout"`
	Resolution      float64 `short:"r" default:"1" desc:"Resolution of raster images in dots per unit"`
	Margin          float64 `default:"1" desc:"Margin around the outline in SVG output"`
	Minify          bool    `desc:"Minify SVG output"`
	NoSplit         bool    `desc:"Do not split cubic Béziers at their inflection points"`
	SplitQuadratics bool    `desc:"Split quadratic Béziers at their inflection points"`
	MaxTurn         float64 `desc:"Split curve pieces that turn more than this many radians"`
	Verbose         bool    `short:"v" desc:"Log analysis details"`
	Path            string  `index:"0" desc:"Path data, or - to read from stdin"`
}

func main() {
	root := argp.NewCmd(&Border{}, "Variable-width border along a path by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Border) Run() error {
	if cmd.Verbose {
		border.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	config := Config{}
	if cmd.Config != "" {
		var err error
		if config, err = loadConfig(cmd.Config); err != nil {
			return err
		}
	}

	path := cmd.Path
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		path = string(b)
	} else if path == "" {
		path = config.Path
	}
	if path == "" {
		fmt.Println("ERROR: must specify path data")
		return argp.ShowUsage
	}

	edges, err := cmd.edges(config)
	if err != nil {
		return err
	}
	opts := cmd.options(config)

	outline, err := border.Analyze(path, edges, opts)
	if err != nil {
		return err
	}

	if cmd.Output == "" || cmd.Output == "-" {
		return dump(os.Stdout, outline)
	}
	return cmd.write(outline)
}

func (cmd *Border) edges(config Config) (border.Edges, error) {
	widths := config.Widths
	if cmd.Widths != "" {
		var err error
		if widths, err = parseWidths(cmd.Widths); err != nil {
			return border.Edges{}, err
		}
	} else if len(widths) == 0 {
		widths = []float64{1.0}
	}

	colorNames := config.Colors
	if cmd.Colors != "" {
		colorNames = splitList(cmd.Colors)
	} else if len(colorNames) == 0 {
		colorNames = []string{"black"}
	}
	colors, err := parseColors(colorNames)
	if err != nil {
		return border.Edges{}, err
	}

	sideWidths, err := expandSides(widths)
	if err != nil {
		return border.Edges{}, fmt.Errorf("widths: %w", err)
	}
	sideColors, err := expandSides(colors)
	if err != nil {
		return border.Edges{}, fmt.Errorf("colors: %w", err)
	}
	return border.NewEdges(sideWidths, sideColors), nil
}

func (cmd *Border) options(config Config) border.Options {
	opts := config.Options.apply(border.DefaultOptions)
	if cmd.NoSplit {
		opts.SplitCubics = false
	}
	if cmd.SplitQuadratics {
		opts.SplitQuadratics = true
	}
	if cmd.MaxTurn != 0.0 {
		opts.MaxTurn = cmd.MaxTurn
	}
	return opts
}

func (cmd *Border) write(outline *border.Outline) error {
	var writer func(io.Writer, *border.Outline) error
	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".svg":
		writer = func(w io.Writer, o *border.Outline) error {
			return svg.Writer(w, o, svg.Options{Margin: cmd.Margin, Minify: cmd.Minify})
		}
	case ".png":
		writer = rasterizer.PNGWriter(cmd.Resolution)
	case ".jpg", ".jpeg":
		writer = rasterizer.JPGWriter(cmd.Resolution, nil)
	case ".gif":
		writer = rasterizer.GIFWriter(cmd.Resolution, nil)
	default:
		return fmt.Errorf("unknown output format %q", ext)
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := writer(f, outline); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dump writes the analyzed segments with their corners as text.
func dump(w io.Writer, outline *border.Outline) error {
	for i, seg := range outline.Segments {
		if _, err := fmt.Fprintf(w, "%d: %v color=%v inner=%v outer=%v\n", i, seg, border.CSSColor(seg.Color), seg.AdjustedInnerEnd, seg.AdjustedOuterEnd); err != nil {
			return err
		}
	}
	return nil
}
