package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/typefirst/overtype/internal/render"
	"github.com/typefirst/overtype/internal/token"
)

const tabWidth = 4

// cell is the display state of one target offset. Cells are mutated only by
// projector directives.
type cell struct {
	glyph    rune
	class    render.Class
	category token.Category
}

// styledCell is a cell resolved to its on-screen string for the current
// theme and cursor position.
type styledCell struct {
	idx     int
	s       string
	width   int
	isSpace bool
	isBreak bool
}

func (m *Model) styledCells() []styledCell {
	out := make([]styledCell, 0, len(m.cells))
	pos := m.tracker.Pos()
	for i, c := range m.cells {
		style := m.theme.Style(c.class, c.category)
		if i == pos {
			style = m.theme.Cursor(style)
		}
		visible, width := visibleGlyph(c)
		out = append(out, styledCell{
			idx:     i,
			s:       style.Render(visible),
			width:   width,
			isSpace: c.glyph == ' ',
			isBreak: m.tracker.At(i) == '\n',
		})
	}
	return out
}

// visibleGlyph maps a cell's glyph to a printable string. Newlines show as a
// return mark, tabs expand to a fixed-width arrow, and an incorrectly typed
// space becomes a dot so the mistake stays visible.
func visibleGlyph(c cell) (string, int) {
	switch {
	case c.glyph == '\n':
		return "⏎", 1
	case c.glyph == '\t':
		return "⇥   ", tabWidth
	case c.class == render.Incorrect && c.glyph == ' ':
		return "·", 1
	default:
		return string(c.glyph), runewidth.RuneWidth(c.glyph)
	}
}
