package rasterizer

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/tdewolff/border"
)

// PNGWriter writes the outline as a PNG file
func PNGWriter(resolution float64) func(io.Writer, *border.Outline) error {
	return func(w io.Writer, o *border.Outline) error {
		img := Draw(o, resolution)
		border.Logger().Debug("rasterized outline", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return png.Encode(w, img)
	}
}

// JPGWriter writes the outline as a JPG file
func JPGWriter(resolution float64, opts *jpeg.Options) func(io.Writer, *border.Outline) error {
	return func(w io.Writer, o *border.Outline) error {
		img := Draw(o, resolution)
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the outline as a GIF file
func GIFWriter(resolution float64, opts *gif.Options) func(io.Writer, *border.Outline) error {
	return func(w io.Writer, o *border.Outline) error {
		img := Draw(o, resolution)
		return gif.Encode(w, img, opts)
	}
}
