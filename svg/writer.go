package svg

import (
	"bytes"
	"io"

	"github.com/tdewolff/border"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Options are the options for Writer.
type Options struct {
	// Margin is added around the bounds of the outline.
	Margin float64

	// Minify minifies the resulting document.
	Minify bool
}

// DefaultOptions are the default options for Writer.
var DefaultOptions = Options{
	Margin: 1.0,
}

// Writer writes the outline as a SVG file with one path element per band, classed by the side of its segment.
func Writer(w io.Writer, o *border.Outline, opts Options) error {
	if !opts.Minify {
		return write(w, o, opts)
	}

	buf := &bytes.Buffer{}
	if err := write(buf, o, opts); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	return m.Minify("image/svg+xml", w, buf)
}

func write(w io.Writer, o *border.Outline, opts Options) error {
	rect := o.Bounds()
	rect.X -= opts.Margin
	rect.Y -= opts.Margin
	rect.W += 2.0 * opts.Margin
	rect.H += 2.0 * opts.Margin

	r := New(w, rect)
	for i, seg := range o.Segments {
		class := seg.Side.String()
		r.AddClass(class)
		o.Band(i).Draw(r)
		r.RemoveClass(class)
	}
	width, height := r.Size()
	border.Logger().Debug("wrote svg", "bands", o.Len(), "width", width, "height", height, "minify", opts.Minify)
	return r.Close()
}
