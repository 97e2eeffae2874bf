package border

import "image/color"

// Drawer receives the drawing commands of an outline. Every band is drawn as one closed contour followed by Fill.
type Drawer interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadTo(cp, p Point)
	CubeTo(cp1, cp2, p Point)
	ClosePath()
	Fill(col color.RGBA)
}

// Band is the drawable stroke area of one segment. Outer runs from the previous corner to this segment's corner,
// Inner runs in the same direction and is drawn reversed.
type Band struct {
	Color color.RGBA
	Line  bool
	Outer []Subpath
	Inner []Subpath
}

// Band returns the band of segment i, with the boundary end points replaced by the corners shared with the
// neighbouring segments. The outline itself is not modified.
func (o *Outline) Band(i int) Band {
	seg := o.Segments[i]
	prev := o.Segments[o.Prev(i)]
	return Band{
		Color: seg.Color,
		Line:  seg.IsLine(),
		Outer: withEnds(seg.Outer, prev.AdjustedOuterEnd, seg.AdjustedOuterEnd),
		Inner: withEnds(seg.Inner, prev.AdjustedInnerEnd, seg.AdjustedInnerEnd),
	}
}

func withEnds(subs []Subpath, start, end Point) []Subpath {
	out := make([]Subpath, len(subs))
	for i, sub := range subs {
		out[i] = append(Subpath{}, sub...)
	}
	out[0][0] = start
	last := out[len(out)-1]
	last[len(last)-1] = end
	return out
}

// Draw draws the band as a closed contour: along the outer boundary, across to the inner boundary at the end
// corner, and back along the inner boundary.
func (b Band) Draw(d Drawer) {
	outerEnd := b.Outer[len(b.Outer)-1]
	innerEnd := b.Inner[len(b.Inner)-1]

	d.MoveTo(b.Outer[0][0])
	if b.Line {
		d.LineTo(outerEnd[len(outerEnd)-1])
	} else {
		for _, sub := range b.Outer {
			drawSubpath(d, sub)
		}
	}
	d.LineTo(innerEnd[len(innerEnd)-1])
	if b.Line {
		d.LineTo(b.Inner[0][0])
	} else {
		for i := len(b.Inner) - 1; 0 <= i; i-- {
			drawSubpath(d, reverse(b.Inner[i]))
		}
	}
	d.ClosePath()
	d.Fill(b.Color)
}

// Contour returns the end points of the drawn contour in drawing order, control points excluded.
func (b Band) Contour() []Point {
	ps := []Point{b.Outer[0][0]}
	for _, sub := range b.Outer {
		ps = append(ps, sub[len(sub)-1])
	}
	for i := len(b.Inner) - 1; 0 <= i; i-- {
		sub := b.Inner[i]
		ps = append(ps, sub[len(sub)-1], sub[0])
	}
	// inner sub-paths are contiguous, drop the repeated joints
	contour := []Point{ps[0]}
	for _, p := range ps[1:] {
		if !p.Equals(contour[len(contour)-1]) {
			contour = append(contour, p)
		}
	}
	return contour
}

func drawSubpath(d Drawer, sub Subpath) {
	switch len(sub) {
	case 2:
		d.LineTo(sub[1])
	case 3:
		d.QuadTo(sub[1], sub[2])
	case 4:
		d.CubeTo(sub[1], sub[2], sub[3])
	}
}

func reverse(sub Subpath) Subpath {
	rev := make(Subpath, len(sub))
	for i, p := range sub {
		rev[len(sub)-1-i] = p
	}
	return rev
}

// Draw draws the bands of all segments in path order.
func (o *Outline) Draw(d Drawer) {
	for i := range o.Segments {
		o.Band(i).Draw(d)
	}
}

// Bounds returns the bounding box of the band, including control points.
func (b Band) Bounds() Rect {
	var ps []Point
	for _, subs := range [][]Subpath{b.Outer, b.Inner} {
		for _, sub := range subs {
			ps = append(ps, sub...)
		}
	}
	return rectFromPoints(ps...)
}

// Bounds returns the bounding box of all bands.
func (o *Outline) Bounds() Rect {
	rect := Rect{}
	for i := range o.Segments {
		rect = rect.Add(o.Band(i).Bounds())
	}
	return rect
}
