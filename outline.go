package border

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	// ErrEmptyPath is returned when a path has no drawn segments.
	ErrEmptyPath = errors.New("empty path")

	// ErrSubpaths is returned when a path consists of more than one contour.
	ErrSubpaths = errors.New("path must be a single contour")
)

// Options control how curves are offset.
type Options struct {
	// SplitCubics splits cubic Béziers at their inflection points before offsetting.
	SplitCubics bool

	// SplitQuadratics splits quadratic Béziers at their inflection points before offsetting. They have none, so
	// only MaxTurn can split them.
	SplitQuadratics bool

	// SkipZeroLength drops segments whose points all coincide, such as a close command at the start point.
	SkipZeroLength bool

	// MaxTurn halves curve pieces whose tangent turns by more than MaxTurn radians. Zero disables it.
	MaxTurn float64
}

// DefaultOptions are the default options for Analyze.
var DefaultOptions = Options{
	SplitCubics:    true,
	SkipZeroLength: true,
}

func (opts Options) split(order int) bool {
	if order == 2 {
		return opts.SplitQuadratics
	}
	return opts.SplitCubics
}

// Subpath is a piece of an offset outline: two points for a line, or the start, control, and end points of a
// quadratic or cubic Bézier.
type Subpath []Point

// AnalyzedSegment is a path segment with its side, stroke, and the inner and outer boundaries of its stroke.
type AnalyzedSegment struct {
	Cmd     PathCmd
	Start   Point
	End     Point
	Control []Point

	Side       Side
	Stroke     float64
	HalfStroke float64
	Color      color.RGBA

	// Inner is offset by +HalfStroke, Outer by -HalfStroke, see Parallel for the orientation.
	Inner []Subpath
	Outer []Subpath

	// AdjustedInnerEnd and AdjustedOuterEnd are the corners where the boundaries meet those of the next segment.
	AdjustedInnerEnd Point
	AdjustedOuterEnd Point
}

// IsLine returns true if the segment has no control points.
func (seg AnalyzedSegment) IsLine() bool {
	return len(seg.Control) == 0
}

func (seg AnalyzedSegment) String() string {
	return fmt.Sprintf("%v %v-%v %v stroke=%g", seg.Cmd, seg.Start, seg.End, seg.Side, seg.Stroke)
}

// Outline is the result of analyzing a closed path: its segments in path order. The segments form a cycle; use
// Next and Prev to find neighbours.
type Outline struct {
	Segments []AnalyzedSegment
}

// Len returns the number of segments.
func (o *Outline) Len() int {
	return len(o.Segments)
}

// Next returns the index of the segment following segment i.
func (o *Outline) Next(i int) int {
	return (i + 1) % len(o.Segments)
}

// Prev returns the index of the segment preceding segment i.
func (o *Outline) Prev(i int) int {
	return (i - 1 + len(o.Segments)) % len(o.Segments)
}

// Analyze parses path text and computes the border outline of the closed path, where every segment is stroked with
// the width and color of its side.
func Analyze(path string, edges Edges, opts Options) (*Outline, error) {
	cmds, err := ParseCommands(path)
	if err != nil {
		return nil, err
	}
	return AnalyzeSegments(Normalize(cmds), edges, opts)
}

// AnalyzeSegments computes the border outline of normalized segments. A leading move is dropped as it only sets the
// initial cursor. The path is closed implicitly: the first segment starts where the last one ends.
func AnalyzeSegments(segs []Segment, edges Edges, opts Options) (*Outline, error) {
	if 0 < len(segs) && segs[0].Cmd == MoveToCmd {
		segs = segs[1:]
	}
	for _, seg := range segs {
		if seg.Cmd == MoveToCmd {
			return nil, ErrSubpaths
		}
	}
	if opts.SkipZeroLength {
		segs = dropZeroLength(segs)
	}
	if len(segs) == 0 {
		return nil, ErrEmptyPath
	}

	o := newOutline(segs)
	o.classify(edges)
	o.offset(opts)
	o.resolveJoints()
	Logger().Debug("analyzed path", "segments", o.Len())
	return o, nil
}

func dropZeroLength(segs []Segment) []Segment {
	kept := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		if !seg.zeroLength() {
			kept = append(kept, seg)
		}
	}
	if len(kept) == 0 {
		return segs
	} else if len(kept) < len(segs) {
		Logger().Debug("dropped zero-length segments", "count", len(segs)-len(kept))
	}
	return kept
}

// newOutline links the segments in a cycle, taking the start of every segment from the end of the previous one.
func newOutline(segs []Segment) *Outline {
	o := &Outline{
		Segments: make([]AnalyzedSegment, len(segs)),
	}
	for i, seg := range segs {
		o.Segments[i] = AnalyzedSegment{
			Cmd:     seg.Cmd,
			End:     seg.End,
			Control: seg.Control(),
		}
	}
	for i := range o.Segments {
		o.Segments[i].Start = o.Segments[o.Prev(i)].End
	}
	return o
}

func (o *Outline) classify(edges Edges) {
	for i := range o.Segments {
		seg := &o.Segments[i]
		seg.Side = Classify(seg.Start, seg.End)
		edge := edges[seg.Side]
		seg.Stroke = math.Max(0.0, edge.Width)
		seg.HalfStroke = seg.Stroke / 2.0
		seg.Color = edge.Color
	}
}

func (o *Outline) offset(opts Options) {
	for i := range o.Segments {
		seg := &o.Segments[i]
		if seg.IsLine() {
			lines := Parallel(seg.Start, seg.End, seg.HalfStroke)
			seg.Inner = []Subpath{{lines[0][0], lines[0][1]}}
			seg.Outer = []Subpath{{lines[1][0], lines[1][1]}}
			continue
		}

		b := make(Bezier, 0, len(seg.Control)+2)
		b = append(b, seg.Start)
		b = append(b, seg.Control...)
		b = append(b, seg.End)
		seg.Inner = subpaths(OffsetCurve(b, seg.HalfStroke, opts))
		seg.Outer = subpaths(OffsetCurve(b, -seg.HalfStroke, opts))
	}
}

func subpaths(curves []Bezier) []Subpath {
	subs := make([]Subpath, len(curves))
	for i, curve := range curves {
		subs[i] = Subpath(curve)
	}
	return subs
}

// resolveJoints intersects the end tangent of every boundary with the start tangent of the next segment's boundary.
func (o *Outline) resolveJoints() {
	for i := range o.Segments {
		seg := &o.Segments[i]
		next := &o.Segments[o.Next(i)]
		seg.AdjustedInnerEnd = Intersect(endTangent(seg.Inner[len(seg.Inner)-1]), startTangent(next.Inner[0]))
		seg.AdjustedOuterEnd = Intersect(endTangent(seg.Outer[len(seg.Outer)-1]), startTangent(next.Outer[0]))
	}
}
