package border

import (
	"math"
	"sort"
)

// maxTurnDepth limits how often a curve piece is halved to satisfy Options.MaxTurn.
const maxTurnDepth = 8

// Bezier is a quadratic (three points) or cubic (four points) Bézier curve given by its start point, control points,
// and end point.
type Bezier []Point

// Order returns the degree of the curve, ie. 2 for quadratic and 3 for cubic Béziers.
func (b Bezier) Order() int {
	return len(b) - 1
}

// Eval returns the point on the curve at t ∈ [0,1] using De Casteljau's algorithm.
func (b Bezier) Eval(t float64) Point {
	ps := append([]Point{}, b...)
	for n := len(ps) - 1; 0 < n; n-- {
		for i := 0; i < n; i++ {
			ps[i] = ps[i].Interpolate(ps[i+1], t)
		}
	}
	return ps[0]
}

// Deriv returns the first derivative of the curve at t.
func (b Bezier) Deriv(t float64) Point {
	n := float64(b.Order())
	hodograph := make(Bezier, len(b)-1)
	for i := range hodograph {
		hodograph[i] = b[i+1].Sub(b[i]).Mul(n)
	}
	if len(hodograph) == 1 {
		return hodograph[0]
	}
	return hodograph.Eval(t)
}

// Normal returns the unit normal at t, pointing along (-dy,dx). When the derivative vanishes at an end point the
// direction towards the nearest distinct control point is used.
func (b Bezier) Normal(t float64) Point {
	d := b.Deriv(t)
	if equal(d.Length(), 0.0) {
		if t < 0.5 {
			tan := startTangent(b)
			d = tan[1].Sub(tan[0])
		} else {
			tan := endTangent(b)
			d = tan[1].Sub(tan[0])
		}
	}
	return d.Rot90CCW().Norm(1.0)
}

// Inflections returns the curve parameters t ∈ (0,1) in ascending order at which the curvature changes sign.
// Quadratic Béziers have none.
//
// With B(t) = P0 + 3t*A + 3t^2*B + t^3*C the cross product of the first and second derivatives is proportional to
// (AxB) + t*(AxC) + t^2*(BxC).
func (b Bezier) Inflections() []float64 {
	if len(b) != 4 {
		return nil
	}
	A := b[1].Sub(b[0])
	B := b[2].Sub(b[1].Mul(2.0)).Add(b[0])
	C := b[3].Sub(b[2].Mul(3.0)).Add(b[1].Mul(3.0)).Sub(b[0])

	t1, t2 := solveQuadraticFormula(B.PerpDot(C), A.PerpDot(C), A.PerpDot(B))
	ts := []float64{}
	for _, t := range []float64{t1, t2} {
		if Epsilon < t && t < 1.0-Epsilon { // skips NaN
			ts = append(ts, t)
		}
	}
	return ts
}

// Split splits the curve at t and returns the curves over [0,t] and [t,1].
func (b Bezier) Split(t float64) (Bezier, Bezier) {
	n := len(b)
	left := make(Bezier, n)
	right := make(Bezier, n)
	ps := append([]Point{}, b...)
	for k := 0; k < n; k++ {
		left[k] = ps[0]
		right[n-1-k] = ps[n-1-k]
		for i := 0; i < n-1-k; i++ {
			ps[i] = ps[i].Interpolate(ps[i+1], t)
		}
	}
	return left, right
}

// SubCurve returns the part of the curve over [t0,t1].
func (b Bezier) SubCurve(t0, t1 float64) Bezier {
	left, _ := b.Split(t1)
	if t1 == 0.0 {
		return left
	}
	_, mid := left.Split(t0 / t1)
	return mid
}

// Offset returns the curve displaced by d along its normal, approximated by a curve of the same order. It uses the
// Tiller-Hanson construction: every leg of the control polygon is translated by d along its normal and the
// interior control points are placed at the intersections of consecutive translated legs. The end points of the
// result lie exactly at distance d from the end points of b, along the end normals.
func (b Bezier) Offset(d float64) Bezier {
	n := len(b) - 1
	normals := make([]Point, n)
	for i := 0; i < n; i++ {
		normals[i] = b.legDirection(i).Rot90CCW().Norm(d)
	}

	q := make(Bezier, len(b))
	q[0] = b[0].Add(normals[0])
	q[n] = b[n].Add(normals[n-1])
	for i := 1; i < n; i++ {
		a0, a1 := b[i-1].Add(normals[i-1]), b[i].Add(normals[i-1])
		b0, b1 := b[i].Add(normals[i]), b[i+1].Add(normals[i])
		if a0.Equals(a1) || b0.Equals(b1) {
			a1 = a0.Add(b.legDirection(i - 1))
			b1 = b0.Add(b.legDirection(i))
		}
		if p, ok := intersectionLineLine(a0, a1, b0, b1); ok {
			q[i] = p
		} else {
			q[i] = b[i].Add(normals[i-1].Add(normals[i]).Mul(0.5))
		}
	}
	return q
}

// legDirection returns the direction of the i-th leg of the control polygon. Degenerate legs take the direction
// towards the next distinct control point, or from the previous one.
func (b Bezier) legDirection(i int) Point {
	if d := b[i+1].Sub(b[i]); !equal(d.Length(), 0.0) {
		return d
	}
	for j := i + 2; j < len(b); j++ {
		if d := b[j].Sub(b[i]); !equal(d.Length(), 0.0) {
			return d
		}
	}
	for j := i - 1; 0 <= j; j-- {
		if d := b[i+1].Sub(b[j]); !equal(d.Length(), 0.0) {
			return d
		}
	}
	return Point{0.0, 1.0}
}

// turn returns the absolute angle between the start and end tangents.
func (b Bezier) turn() float64 {
	t0 := startTangent(b)
	t1 := endTangent(b)
	return math.Abs(t0[1].Sub(t0[0]).AngleBetween(t1[1].Sub(t1[0])))
}

// Pieces splits the curve into pieces of monotonic curvature at its inflection points when split is set. A quadratic
// has none and stays whole. Pieces that turn by more than maxTurn radians are halved further, unless maxTurn is zero.
func (b Bezier) Pieces(split bool, maxTurn float64) []Bezier {
	pieces := []Bezier{b}
	if split {
		if ts := b.Inflections(); 0 < len(ts) {
			ts = append([]float64{0.0}, append(ts, 1.0)...)
			sort.Float64s(ts)
			pieces = pieces[:0]
			for i := 0; i+1 < len(ts); i++ {
				pieces = append(pieces, b.SubCurve(ts[i], ts[i+1]))
			}
			Logger().Debug("split curve at inflections", "t", ts[1:len(ts)-1])
		}
	}
	if 0.0 < maxTurn {
		var reduced []Bezier
		for _, piece := range pieces {
			reduced = appendReduced(reduced, piece, maxTurn, 0)
		}
		pieces = reduced
	}
	return pieces
}

func appendReduced(pieces []Bezier, b Bezier, maxTurn float64, depth int) []Bezier {
	if maxTurnDepth <= depth || b.turn() <= maxTurn {
		return append(pieces, b)
	}
	left, right := b.Split(0.5)
	pieces = appendReduced(pieces, left, maxTurn, depth+1)
	return appendReduced(pieces, right, maxTurn, depth+1)
}

// OffsetCurve returns the offset of b at distance d as one or more curves in curve order. The curve is split at its
// inflection points first (if enabled for its order in opts), so that every piece can be offset without
// self-intersection. The end point of each curve coincides with the start point of the next.
func OffsetCurve(b Bezier, d float64, opts Options) []Bezier {
	pieces := b.Pieces(opts.split(b.Order()), opts.MaxTurn)
	offsets := make([]Bezier, len(pieces))
	for i, piece := range pieces {
		offsets[i] = piece.Offset(d)
	}
	return offsets
}
