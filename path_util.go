package border

import "math"

// ParallelTolerance is the maximum difference in slope for which two lines are considered parallel in Intersect.
var ParallelTolerance = 0.01

// Slope returns the slope of the line through p0 and p1. It returns +Inf for vertical lines.
func Slope(p0, p1 Point) float64 {
	if p0.X == p1.X {
		return math.Inf(1)
	}
	return (p1.Y - p0.Y) / (p1.X - p0.X)
}

// Parallel returns the two lines obtained by translating p0-p1 perpendicular to itself by +d and -d respectively.
// The +d side lies to the left of the direction of travel in a y-up coordinate system, ie. along (-dy,dx).
// Vertical lines are translated along the horizontal axis directly.
func Parallel(p0, p1 Point, d float64) [2][2]Point {
	var n Point
	if p0.X == p1.X {
		n = Point{-d, 0.0}
		if p1.Y < p0.Y {
			n.X = d
		}
	} else {
		n = p1.Sub(p0).Rot90CCW().Norm(d)
	}
	return [2][2]Point{
		{p0.Add(n), p1.Add(n)},
		{p0.Sub(n), p1.Sub(n)},
	}
}

// Intersect returns the intersection of the infinite extensions of line segments s0 and s1. Lines whose slopes
// differ less than ParallelTolerance, two vertical lines, and zero-length segments do not intersect; instead the
// midpoint between the end of s0 and the start of s1 is returned.
func Intersect(s0, s1 [2]Point) Point {
	mid := s0[1].Interpolate(s1[0], 0.5)
	if s0[0].Equals(s0[1]) || s1[0].Equals(s1[1]) {
		return mid
	}

	m0 := Slope(s0[0], s0[1])
	m1 := Slope(s1[0], s1[1])
	vertical0, vertical1 := math.IsInf(m0, 1), math.IsInf(m1, 1)
	if vertical0 && vertical1 || math.Abs(m0-m1) < ParallelTolerance {
		Logger().Debug("parallel joint", "s0", s0, "s1", s1)
		return mid
	}

	if vertical0 {
		x := s0[0].X
		return Point{x, m1*(x-s1[0].X) + s1[0].Y}
	} else if vertical1 {
		x := s1[0].X
		return Point{x, m0*(x-s0[0].X) + s0[0].Y}
	}
	b0 := s0[0].Y - m0*s0[0].X
	b1 := s1[0].Y - m1*s1[0].X
	x := (b1 - b0) / (m0 - m1)
	return Point{x, m0*x + b0}
}

// intersectionLineLine returns the intersection of the infinite lines through a0-a1 and b0-b1. It returns false when
// the lines are (nearly) parallel.
func intersectionLineLine(a0, a1, b0, b1 Point) (Point, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if math.Abs(div) <= Epsilon*da.Length()*db.Length() || div == 0.0 {
		return Point{}, false
	}
	t := b0.Sub(a0).PerpDot(db) / div
	return a0.Add(da.Mul(t)), true
}

// startTangent returns the first point of ps and the first following point that differs from it.
func startTangent(ps []Point) [2]Point {
	for _, p := range ps[1:] {
		if !p.Equals(ps[0]) {
			return [2]Point{ps[0], p}
		}
	}
	return [2]Point{ps[0], ps[0]}
}

// endTangent returns the last point preceding the end of ps that differs from it, and the end point.
func endTangent(ps []Point) [2]Point {
	end := ps[len(ps)-1]
	for i := len(ps) - 2; 0 <= i; i-- {
		if !ps[i].Equals(end) {
			return [2]Point{ps[i], end}
		}
	}
	return [2]Point{end, end}
}
