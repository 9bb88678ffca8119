// Package theme maps token categories and display classes to terminal styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/typefirst/overtype/internal/render"
	"github.com/typefirst/overtype/internal/token"
)

// Theme is a total mapping from (class, category) to a lipgloss style.
// Every category has a full-intensity variant (revealed by correct typing)
// and a faint variant (not yet typed); incorrect offsets share one fixed
// error style regardless of category.
type Theme struct {
	full   map[token.Category]lipgloss.Style
	faint  map[token.Category]lipgloss.Style
	err    lipgloss.Style
	footer lipgloss.Style
}

type palette struct {
	full  string
	faint string
}

var defaultPalette = map[token.Category]palette{
	token.Default:     {full: "#F0F0F0", faint: "#6E6E6E"},
	token.Keyword:     {full: "#C678DD", faint: "#5E4568"},
	token.Name:        {full: "#E5C07B", faint: "#6E5D43"},
	token.String:      {full: "#98C379", faint: "#4D6140"},
	token.Number:      {full: "#D19A66", faint: "#66503A"},
	token.Operator:    {full: "#56B6C2", faint: "#3A5D63"},
	token.Punctuation: {full: "#ABB2BF", faint: "#565B63"},
	token.Comment:     {full: "#8C9199", faint: "#45484D"},
}

// Default builds the built-in dark theme.
func Default() Theme {
	t := Theme{
		full:   make(map[token.Category]lipgloss.Style, len(defaultPalette)),
		faint:  make(map[token.Category]lipgloss.Style, len(defaultPalette)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
	}
	for _, cat := range token.Categories() {
		p, ok := defaultPalette[cat]
		if !ok {
			p = defaultPalette[token.Default]
		}
		t.full[cat] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.full))
		t.faint[cat] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint))
	}
	return t
}

// Style resolves the style for a directive's class and category. Unknown
// categories fall back to Default.
func (t Theme) Style(class render.Class, cat token.Category) lipgloss.Style {
	if class == render.Incorrect {
		return t.err
	}
	m := t.faint
	if class == render.Correct {
		m = t.full
	}
	if s, ok := m[cat]; ok {
		return s
	}
	return m[token.Default]
}

// Cursor returns the style layered on the offset under the cursor.
func (t Theme) Cursor(base lipgloss.Style) lipgloss.Style {
	return base.Underline(true)
}

// Footer returns the status line style.
func (t Theme) Footer() lipgloss.Style {
	return t.footer
}
