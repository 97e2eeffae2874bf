package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/border"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Draw draws the outline on a new image with given resolution (in dots per unit), covering the bounds of the
// outline. Higher resolution will result in bigger images.
func Draw(o *border.Outline, resolution float64) *image.RGBA {
	bounds := o.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(bounds.W*resolution)), int(math.Ceil(bounds.H*resolution))))
	ras := New(img, resolution, border.Point{X: bounds.X, Y: bounds.Y})
	o.Draw(ras)
	w, h := ras.Size()
	border.Logger().Debug("rasterized outline", "width", w, "height", h, "resolution", resolution)
	return img
}

// Renderer fills contours on an image with an anti-aliasing rasterizer. It implements border.Drawer.
type Renderer struct {
	img        draw.Image
	resolution float64
	origin     border.Point
	ras        *vector.Rasterizer
}

// New creates a renderer that draws to a rasterized image. The origin is the coordinate drawn at the top-left
// corner of the image.
func New(img draw.Image, resolution float64, origin border.Point) *Renderer {
	size := img.Bounds().Size()
	return &Renderer{
		img:        img,
		resolution: resolution,
		origin:     origin,
		ras:        vector.NewRasterizer(size.X, size.Y),
	}
}

// Size returns the width and height in path units.
func (r *Renderer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / r.resolution, float64(size.Y) / r.resolution
}

func (r *Renderer) point(p border.Point) (float32, float32) {
	return float32((p.X - r.origin.X) * r.resolution), float32((p.Y - r.origin.Y) * r.resolution)
}

func (r *Renderer) MoveTo(p border.Point) {
	r.ras.MoveTo(r.point(p))
}

func (r *Renderer) LineTo(p border.Point) {
	r.ras.LineTo(r.point(p))
}

func (r *Renderer) QuadTo(cp, p border.Point) {
	x1, y1 := r.point(cp)
	x2, y2 := r.point(p)
	r.ras.QuadTo(x1, y1, x2, y2)
}

func (r *Renderer) CubeTo(cp1, cp2, p border.Point) {
	x1, y1 := r.point(cp1)
	x2, y2 := r.point(cp2)
	x3, y3 := r.point(p)
	r.ras.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (r *Renderer) ClosePath() {
	r.ras.ClosePath()
}

// Fill composites the contours drawn since the last Fill over the image and resets the rasterizer.
func (r *Renderer) Fill(col color.RGBA) {
	size := r.img.Bounds().Size()
	if col.A != 0 {
		bounds := r.img.Bounds()
		r.ras.Draw(r.img, bounds, image.NewUniform(col), bounds.Min)
	}
	r.ras.Reset(size.X, size.Y)
}
