// Package recentui provides the Bubble Tea recent-files picker.
package recentui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typefirst/overtype/internal/store"
)

const listLimit = 50

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model is a table picker over the recents store. After the program exits,
// Choice reports the selected entry, if any.
type Model struct {
	store   *store.Store
	recents []store.Recent
	table   table.Model
	choice  *store.Recent
	errMsg  string

	width  int
	height int
}

// NewModel loads the recents list and builds the picker.
func NewModel(st *store.Store) *Model {
	m := &Model{store: st}
	m.reload()
	return m
}

// Choice returns the entry picked with enter, or nil.
func (m *Model) Choice() *store.Recent {
	return m.choice
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
		m.table.SetWidth(m.width)
		m.table.SetHeight(maxInt(1, m.height-2))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if i := m.table.Cursor(); i >= 0 && i < len(m.recents) {
				picked := m.recents[i]
				m.choice = &picked
			}
			return m, tea.Quit
		case "x":
			if i := m.table.Cursor(); i >= 0 && i < len(m.recents) {
				if err := m.store.Forget(context.Background(), m.recents[i].Path); err != nil {
					m.errMsg = fmt.Sprintf("failed to forget entry: %v", err)
				} else {
					m.reload()
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if len(m.recents) == 0 {
		return headerStyle.Render("no recent files — run: overtype <file>")
	}
	header := headerStyle.Render("enter: practice  x: forget  q: quit")
	return header + "\n" + m.table.View()
}

func (m *Model) reload() {
	recents, err := m.store.ListRecent(context.Background(), listLimit)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load recents: %v", err)
		return
	}
	m.recents = recents
	m.table = buildTable(recents, m.width, m.height)
}

func buildTable(recents []store.Recent, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Path", Width: 48},
		{Title: "Language", Width: 12},
		{Title: "Opened", Width: 16},
		{Title: "Opens", Width: 5},
	}
	rows := make([]table.Row, 0, len(recents))
	for _, r := range recents {
		lang := r.Language
		if lang == "" {
			lang = "plain"
		}
		rows = append(rows, table.Row{
			r.Path,
			lang,
			r.OpenedAt.Format(time.DateTime),
			fmt.Sprintf("%d", r.Opens),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxInt(1, height-2)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1)
	styles.Cell = styles.Cell.Padding(0, 1)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3F4B")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
