package border

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func segmentsString(segs []Segment) string {
	sb := strings.Builder{}
	for i, seg := range segs {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

func TestNormalize(t *testing.T) {
	var tts = []struct {
		path     string
		expected string
	}{
		{"", ""},
		{"M0 0L10 0Q15 5 10 10C5 15 0 15 0 10", "M[0 0] L[10 0] Q[15 5 10 10] C[5 15 0 15 0 10]"},
		{"m10 10l10 0q5 5 0 10c-5 5 -10 5 -10 0", "M[10 10] L[20 10] Q[25 15 20 20] C[15 25 10 25 10 20]"},
		{"m10 10 10 0 0 10", "M[10 10] L[20 10] L[20 20]"},
		{"M1 2H10V20h-5v-3", "M[1 2] L[10 2] L[10 20] L[5 20] L[5 17]"},
		{"M5 5L10 5L10 10Z", "M[5 5] L[10 5] L[10 10] L[5 5]"},
		{"M5 5L10 5l0 5z", "M[5 5] L[10 5] L[10 10] L[5 5]"},
		{"M0 0L10 0M20 20L30 20Z", "M[0 0] L[10 0] M[20 20] L[30 20] L[20 20]"},
		{"M0 0L10 0Zl5 5", "M[0 0] L[10 0] L[0 0] L[5 5]"},
		{"M0 0S10 10 20 0", "M[0 0] Q[10 10 20 0]"},
		{"M5 5s10 10 20 0", "M[5 5] Q[15 15 25 5]"},
		{"M0 0T10 10", "M[0 0] L[10 10]"},
		{"M5 5t10 10", "M[5 5] L[15 15]"},
		{"L10 10", "L[10 10]"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			segs := Normalize(MustParseCommands(tt.path))
			test.String(t, segmentsString(segs), tt.expected)
		})
	}
}

func TestNormalizeCursor(t *testing.T) {
	segs := Normalize(MustParseCommands("M5 5l10 0q5 5 0 10H0Z"))
	test.T(t, len(segs), 5)
	test.T(t, segs[0].Start, Point{0.0, 0.0})
	test.T(t, segs[1].Start, Point{5.0, 5.0})
	test.T(t, segs[1].End, Point{15.0, 5.0})
	test.T(t, segs[2].Start, Point{15.0, 5.0})
	test.T(t, segs[2].Control(), []Point{{20.0, 10.0}})
	test.T(t, segs[2].End, Point{15.0, 15.0})
	test.T(t, segs[3].End, Point{0.0, 15.0})
	test.T(t, segs[4].Start, Point{0.0, 15.0})
	test.T(t, segs[4].End, Point{5.0, 5.0})
}

func TestNormalizeRelativeEquivalence(t *testing.T) {
	abs := Normalize(MustParseCommands("M10 10L20 10C25 10 30 15 30 20Q30 30 20 30L10 30Z"))
	rel := Normalize(MustParseCommands("m10 10l10 0c5 0 10 5 10 10q0 10 -10 10h-10z"))
	test.String(t, segmentsString(rel), segmentsString(abs))
}

func TestSegment(t *testing.T) {
	seg := Segment{Cmd: CubeToCmd, Args: []float64{1, 2, 3, 4, 5, 6}, Start: Point{0.0, 0.0}, End: Point{5.0, 6.0}}
	test.T(t, seg.Control(), []Point{{1.0, 2.0}, {3.0, 4.0}})
	test.That(t, !seg.zeroLength())
	test.String(t, seg.String(), "C[1 2 3 4 5 6]")

	seg = Segment{Cmd: LineToCmd, Args: []float64{1, 1}, Start: Point{1.0, 1.0}, End: Point{1.0, 1.0}}
	test.T(t, len(seg.Control()), 0)
	test.That(t, seg.zeroLength())

	seg = Segment{Cmd: QuadToCmd, Args: []float64{2, 2, 1, 1}, Start: Point{1.0, 1.0}, End: Point{1.0, 1.0}}
	test.That(t, !seg.zeroLength())

	test.String(t, PathCmd(7).String(), "PathCmd(7)")
}
