package border

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestClassify(t *testing.T) {
	var tts = []struct {
		start, end Point
		side       Side
	}{
		{Point{0.0, 0.0}, Point{10.0, 2.0}, Top},
		{Point{0.0, 0.0}, Point{10.0, -2.0}, Top},
		{Point{10.0, 0.0}, Point{0.0, -2.0}, Bottom},
		{Point{10.0, 0.0}, Point{0.0, 2.0}, Bottom},
		{Point{0.0, 0.0}, Point{2.0, 10.0}, Right},
		{Point{0.0, 0.0}, Point{-2.0, 10.0}, Right},
		{Point{0.0, 0.0}, Point{0.0, 10.0}, Right},
		{Point{0.0, 0.0}, Point{0.0, -10.0}, Left},
		{Point{0.0, 0.0}, Point{2.0, -10.0}, Left},

		// diagonals are steep
		{Point{0.0, 0.0}, Point{5.0, 5.0}, Right},
		{Point{0.0, 0.0}, Point{-5.0, 5.0}, Right},
		{Point{5.0, 5.0}, Point{0.0, 0.0}, Left},
		{Point{0.0, 0.0}, Point{5.0, -5.0}, Left},

		{Point{3.0, 3.0}, Point{3.0, 3.0}, Left},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Classify(tt.start, tt.end), tt.side)
		})
	}
}

func TestSide(t *testing.T) {
	for side := Top; side <= Left; side++ {
		parsed, err := ParseSide(side.String())
		test.Error(t, err)
		test.T(t, parsed, side)
	}
	test.String(t, Side(4).String(), "Side(4)")

	_, err := ParseSide("middle")
	test.That(t, err != nil)
}

func TestNewEdges(t *testing.T) {
	red := color.RGBA{0xff, 0x00, 0x00, 0xff}
	edges := NewEdges([4]float64{1.0, 2.0, 3.0, 4.0}, [4]color.RGBA{Black, red, Black, red})
	test.T(t, edges[Top], Edge{1.0, Black})
	test.T(t, edges[Right], Edge{2.0, red})
	test.T(t, edges[Bottom], Edge{3.0, Black})
	test.T(t, edges[Left], Edge{4.0, red})
}
