package canvas

// BoxStyle defines the characters used to draw a box.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Predefined box styles
var (
	// DefaultBoxStyle uses rounded corners
	DefaultBoxStyle = BoxStyle{
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
	}

	// SimpleBoxStyle uses ASCII characters
	SimpleBoxStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// DoubleBoxStyle uses double-line characters
	DoubleBoxStyle = BoxStyle{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}
)

// LineStyle defines the characters used for straight connectors.
// Falling runs from top-left to bottom-right, Rising from bottom-left to
// top-right.
type LineStyle struct {
	Horizontal rune
	Vertical   rune
	Falling    rune
	Rising     rune
}

var (
	// DefaultLineStyle uses Unicode box-drawing characters
	DefaultLineStyle = LineStyle{
		Horizontal: '─',
		Vertical:   '│',
		Falling:    '╲',
		Rising:     '╱',
	}

	// ASCIILineStyle uses plain ASCII
	ASCIILineStyle = LineStyle{
		Horizontal: '-',
		Vertical:   '|',
		Falling:    '\\',
		Rising:     '/',
	}
)

// Step returns the character for one Bresenham step of (dx, dy), each of
// which is -1, 0 or 1.
func (s LineStyle) Step(dx, dy int) rune {
	switch {
	case dy == 0:
		return s.Horizontal
	case dx == 0:
		return s.Vertical
	case dx == dy:
		return s.Falling
	default:
		return s.Rising
	}
}
