// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typefirst/overtype/internal/diag"
	"github.com/typefirst/overtype/internal/render"
	"github.com/typefirst/overtype/internal/session"
	"github.com/typefirst/overtype/internal/theme"
	"github.com/typefirst/overtype/internal/token"
)

// Model implements the Bubble Tea practice UI. It owns a cell buffer that is
// mutated only by projector directives; all typing state lives in the
// tracker.
type Model struct {
	tracker   *session.Tracker
	projector *render.Projector
	theme     theme.Theme

	cells []cell
	lexed token.Map
	plain bool

	fileName string
	language string

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

// NewModel constructs a practice model. lexed is the token map for the
// text's language (the plain-text map when no lexer matched); plain starts
// the session without highlighting.
func NewModel(text, fileName, language string, lexed token.Map, plain bool, th theme.Theme) *Model {
	tracker := session.New(text)
	m := &Model{
		tracker:  tracker,
		theme:    th,
		cells:    make([]cell, tracker.Len()),
		lexed:    lexed,
		plain:    plain,
		fileName: fileName,
		language: language,
	}
	m.projector = render.NewProjector(tracker, m.activeTokens())
	m.apply(m.projector.FullRefresh())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := m.height - 1
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = bodyHeight
		}
		m.refreshContent()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.toggleHighlight()
			m.refreshContent()
			return m, nil
		default:
			for _, ev := range keyEvents(msg) {
				out := m.tracker.Apply(ev)
				diag.Logger.Debug("keystroke",
					"kind", ev.Kind, "outcome", out.Kind, "offset", out.Offset, "correct", out.Correct)
				m.apply(m.projector.Project(out))
			}
			m.refreshContent()
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.cells) == 0 {
		return m.placeBody(m.theme.Footer().Render("nothing to type"))
	}
	if !m.ready {
		return ""
	}
	body := m.vp.View()
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footer
}

// keyEvents classifies a Bubble Tea key message into tracker events. Keys
// with no mapping become a single EventOther, which the tracker ignores.
func keyEvents(msg tea.KeyMsg) []session.Event {
	switch msg.Type {
	case tea.KeyEnter:
		return []session.Event{{Kind: session.EventEnter}}
	case tea.KeyTab:
		return []session.Event{{Kind: session.EventTab}}
	case tea.KeyBackspace, tea.KeyDelete:
		return []session.Event{{Kind: session.EventBackspace}}
	case tea.KeySpace:
		return []session.Event{session.RuneEvent(' ')}
	case tea.KeyRunes:
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, session.RuneEvent(r))
		}
		return events
	default:
		return []session.Event{{Kind: session.EventOther}}
	}
}

func (m *Model) apply(dirs []render.Directive) {
	for _, d := range dirs {
		m.cells[d.Offset] = cell{glyph: d.Glyph, class: d.Class, category: d.Category}
	}
}

func (m *Model) toggleHighlight() {
	m.plain = !m.plain
	m.projector.SetTokens(m.activeTokens())
	m.apply(m.projector.FullRefresh())
}

func (m *Model) activeTokens() token.Map {
	if m.plain {
		return token.Plain(m.tracker.Len())
	}
	return m.lexed
}

func (m *Model) refreshContent() {
	if !m.ready || len(m.cells) == 0 {
		return
	}
	contentWidth := int(float64(m.width) * 0.80)
	if contentWidth < 1 {
		contentWidth = 1
	}
	indent := strings.Repeat(" ", (m.width-contentWidth)/2)

	lines := wrapCells(m.styledCells(), contentWidth)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, indent+renderLine(line))
	}
	m.vp.SetContent(strings.Join(rendered, "\n"))
	m.scrollToCursor(lines)
}

// scrollToCursor keeps the cursor's display line inside the viewport.
func (m *Model) scrollToCursor(lines [][]styledCell) {
	cursorLine := lineOf(lines, m.tracker.Pos())
	if cursorLine < m.vp.YOffset {
		m.vp.SetYOffset(cursorLine)
	} else if cursorLine >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(cursorLine - m.vp.Height + 1)
	}
}

func (m *Model) renderFooter() string {
	lang := m.language
	if m.plain || lang == "" {
		lang = "plain"
	}
	progress := 0
	if n := m.tracker.Len(); n > 0 {
		progress = m.tracker.Pos() * 100 / n
	}
	segments := []string{m.fileName, lang, fmt.Sprintf("%d%%", progress)}
	if m.tracker.Done() {
		segments = append(segments, "done · esc to exit")
	}
	return m.theme.Footer().Render(strings.Join(segments, "  "))
}

func (m *Model) placeBody(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
