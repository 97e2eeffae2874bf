/*
Package border computes CSS-like borders along arbitrary closed paths. Like a CSS border on a box, every segment of
the path is assigned to the top, right, bottom, or left side depending on its direction of travel, and is stroked
with the width and color of that side. Lines and quadratic and cubic Béziers are supported.

	edges := border.NewEdges([4]float64{10, 4, 10, 4}, [4]color.RGBA{border.Black, red, border.Black, red})
	outline, err := border.Analyze("M10 10H90V90H10Z", edges, border.DefaultOptions)
	if err != nil {
		panic(err)
	}
	outline.Draw(drawer)

The path text uses the SVG path syntax without arcs. It is normalized to absolute move, line, quadratic, and cubic
commands, after which every segment gets an inner and outer boundary at half its stroke width. Curves are split at
their inflection points first so that their offsets do not self-intersect. Finally, the boundaries of consecutive
segments are intersected to find the corners where one band ends and the next starts, even when the stroke widths
differ.

The resulting Outline is plain data and is drawn through the Drawer interface, see the svg and rasterizer packages.
*/
package border
