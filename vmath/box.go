package vmath

// BoxSide is one bar of a box outline: its size and center
type BoxSide struct {
	Size   Vec2
	Center Vec2
}

// CreateBox returns the four bars outlining bounds: left, right, bottom, top
// Bars are centered on the edges and extended by lineWidth so corners overlap
func CreateBox(bounds Rect, lineWidth float64) []BoxSide {
	center := bounds.Center()
	side := Vec2{lineWidth, bounds.Height() + lineWidth}
	topBottom := Vec2{bounds.Width() + lineWidth, lineWidth}

	sides := make([]BoxSide, 0, 4)
	for _, x := range [2]float64{bounds.Min.X, bounds.Max.X} {
		sides = append(sides, BoxSide{Size: side, Center: Vec2{x, center.Y}})
	}
	for _, y := range [2]float64{bounds.Min.Y, bounds.Max.Y} {
		sides = append(sides, BoxSide{Size: topBottom, Center: Vec2{center.X, y}})
	}
	return sides
}
