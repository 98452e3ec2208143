package terminal

import (
	"mindmap/canvas"
	"mindmap/config"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps canvas classes to screen styles.
type Palette struct {
	styles map[canvas.Class]tcell.Style
}

// NewPalette builds the styles from the configured colors. Without color
// support selection states fall back to reverse video.
func NewPalette(colors config.ColorsConfig, color bool) Palette {
	if !color {
		plain := tcell.StyleDefault
		return Palette{styles: map[canvas.Class]tcell.Style{
			canvas.ClassSelected: plain.Reverse(true),
			canvas.ClassEditing:  plain.Reverse(true),
			canvas.ClassButton:   plain.Reverse(true),
			canvas.ClassHeader:   plain.Bold(true),
			canvas.ClassCursor:   plain.Underline(true),
		}}
	}

	node := colors.Color("node")
	selected := colors.Color("selected")
	editing := colors.Color("editing")
	text := colors.Color("text")
	line := colors.Color("line")
	black := colorful.Color{}

	box := func(bg colorful.Color) tcell.Style {
		return tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(text))
	}

	return Palette{styles: map[canvas.Class]tcell.Style{
		canvas.ClassLine:     tcell.StyleDefault.Foreground(toTcell(line)),
		canvas.ClassNode:     box(node),
		canvas.ClassSelected: box(selected),
		canvas.ClassEditing:  box(editing),
		canvas.ClassText:     tcell.StyleDefault.Foreground(toTcell(text)),
		canvas.ClassHeader:   box(node.BlendLab(black, 0.5).Clamped()),
		canvas.ClassButton:   box(selected).Bold(true),
		canvas.ClassLegend:   box(node.BlendLab(black, 0.5).Clamped()).Foreground(toTcell(line)),
		canvas.ClassCursor:   tcell.StyleDefault.Background(toTcell(text)).Foreground(toTcell(editing)),
	}}
}

// Style returns the style for class.
func (p Palette) Style(class canvas.Class) tcell.Style {
	if s, ok := p.styles[class]; ok {
		return s
	}
	return tcell.StyleDefault
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
