package canvas

import "github.com/mattn/go-runewidth"

// MeasureText returns the display width of a string in terminal cells.
func MeasureText(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth cuts text so it occupies at most maxWidth cells. A wide
// character that would straddle the limit is dropped.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(text, maxWidth, "")
}

// FitText truncates text to fit within maxWidth, adding ellipsis if needed.
func FitText(text string, maxWidth int, ellipsis string) string {
	if MeasureText(text) <= maxWidth {
		return text
	}

	if maxWidth <= MeasureText(ellipsis) {
		return TruncateToWidth(text, maxWidth)
	}
	return runewidth.Truncate(text, maxWidth, ellipsis)
}

// CenterOffset returns the column offset that centers text of textWidth
// cells inside a span of width cells. It is never negative.
func CenterOffset(width, textWidth int) int {
	if textWidth >= width {
		return 0
	}
	return (width - textWidth) / 2
}
