package entity

// ScrollUnit selects the granularity of ScrollBy.
type ScrollUnit int

const (
	// ScrollByPixel moves by raw pixels.
	ScrollByPixel ScrollUnit = iota
	// ScrollByLine moves by a fixed pixel step per unit.
	ScrollByLine
	// ScrollByPage moves by a viewport-relative step per unit.
	ScrollByPage
)

const (
	// DefaultLineStep is the pixel distance of one scroll line.
	DefaultLineStep = 40
	// PageOverlap is kept visible when scrolling by a page.
	PageOverlap = 40
	// MinPageFraction bounds the page step from below as a fraction of the viewport.
	MinPageFraction = 0.875
)

// PageStep returns the pixel distance of one page for a viewport extent.
func PageStep(extent int) int {
	step := extent - PageOverlap
	if floor := int(float64(extent) * MinPageFraction); step < floor {
		step = floor
	}
	if step < 1 {
		step = 1
	}
	return step
}
