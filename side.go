package border

import (
	"fmt"
	"image/color"
	"math"
)

// Side is the edge of a border a path segment is assigned to.
type Side int

// Sides in CSS order.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (side Side) String() string {
	switch side {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", int(side))
}

// ParseSide parses the name of a side.
func ParseSide(s string) (Side, error) {
	for side := Top; side <= Left; side++ {
		if side.String() == s {
			return side, nil
		}
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// Classify returns the side of a segment from start to end by its dominant direction of travel. Steep segments
// (|slope| >= 1) are right when travelling in +y and left otherwise, shallow segments are top when travelling in +x
// and bottom otherwise.
func Classify(start, end Point) Side {
	if start.X == end.X || 1.0 <= math.Abs(Slope(start, end)) {
		if start.Y < end.Y {
			return Right
		}
		return Left
	} else if start.X < end.X {
		return Top
	}
	return Bottom
}

////////////////////////////////////////////////////////////////

// Edge is the stroke width and color of one side.
type Edge struct {
	Width float64
	Color color.RGBA
}

// Edges holds an Edge for each side, indexed by Side.
type Edges [4]Edge

// NewEdges returns edges from widths and colors given in top, right, bottom, left order.
func NewEdges(widths [4]float64, colors [4]color.RGBA) Edges {
	var edges Edges
	for i := range edges {
		edges[i] = Edge{widths[i], colors[i]}
	}
	return edges
}
