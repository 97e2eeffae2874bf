package svg

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/tdewolff/border"
)

// SVG writes every filled contour as a path element. It implements border.Drawer.
type SVG struct {
	w       io.Writer
	rect    border.Rect
	d       strings.Builder
	classes []string
}

// New creates a scalable vector graphics (SVG) renderer for the given view box. Coordinates are written as is, the
// y-axis points down like in the path text.
func New(w io.Writer, rect border.Rect) *SVG {
	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="%v %v %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(rect.W), dec(rect.H), dec(rect.X), dec(rect.Y), dec(rect.W), dec(rect.H))
	return &SVG{
		w:       w,
		rect:    rect,
		classes: []string{},
	}
}

// Close ends the document.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	return err
}

// Size returns the width and height of the view box.
func (r *SVG) Size() (float64, float64) {
	return r.rect.W, r.rect.H
}

// AddClass adds a class attribute to all following path elements.
func (r *SVG) AddClass(class string) {
	if class == "" {
		return
	}
	for _, c := range r.classes {
		if c == class {
			return
		}
	}
	r.classes = append(r.classes, class)
}

// RemoveClass removes a class added by AddClass.
func (r *SVG) RemoveClass(class string) {
	for i, c := range r.classes {
		if c == class {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return
		}
	}
}

func (r *SVG) writeClasses(w io.Writer) {
	if len(r.classes) != 0 {
		fmt.Fprintf(w, `" class="%s`, strings.Join(r.classes, " "))
	}
}

func (r *SVG) MoveTo(p border.Point) {
	fmt.Fprintf(&r.d, "M%v %v", dec(p.X), dec(p.Y))
}

func (r *SVG) LineTo(p border.Point) {
	fmt.Fprintf(&r.d, "L%v %v", dec(p.X), dec(p.Y))
}

func (r *SVG) QuadTo(cp, p border.Point) {
	fmt.Fprintf(&r.d, "Q%v %v %v %v", dec(cp.X), dec(cp.Y), dec(p.X), dec(p.Y))
}

func (r *SVG) CubeTo(cp1, cp2, p border.Point) {
	fmt.Fprintf(&r.d, "C%v %v %v %v %v %v", dec(cp1.X), dec(cp1.Y), dec(cp2.X), dec(cp2.Y), dec(p.X), dec(p.Y))
}

func (r *SVG) ClosePath() {
	r.d.WriteString("z")
}

// Fill writes the contour drawn since the last Fill as a path element. Transparent contours are dropped.
func (r *SVG) Fill(col color.RGBA) {
	defer r.d.Reset()
	if col.A == 0 || r.d.Len() == 0 {
		return
	}

	fmt.Fprintf(r.w, `<path d="%s`, r.d.String())
	if col != border.Black {
		fmt.Fprintf(r.w, `" fill="%v`, border.CSSColor(col))
	}
	r.writeClasses(r.w)
	fmt.Fprintf(r.w, `"/>`)
}
