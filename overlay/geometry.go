package overlay

// Point is a position in CSS pixels.
type Point struct {
	X, Y int
}

// Size is a width and height in CSS pixels.
type Size struct {
	W, H int
}

const (
	tooltipOffset = 15 // distance from the cursor
	tooltipMargin = 10 // minimum gap to the viewport edge
)

// PlaceTooltip positions a tooltip of size tip below-right of the cursor,
// pulled back so it stays tooltipMargin inside the viewport.
// The result may be negative when the tooltip is larger than the viewport.
func PlaceTooltip(cursor Point, tip, viewport Size) Point {
	return Point{
		X: min(cursor.X+tooltipOffset, viewport.W-tip.W-tooltipMargin),
		Y: min(cursor.Y+tooltipOffset, viewport.H-tip.H-tooltipMargin),
	}
}
