package recentui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typefirst/overtype/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "overtype.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func TestPickMostRecentEntry(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if err := st.Touch(ctx, "/tmp/old.py", "Python"); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := st.Touch(ctx, "/tmp/new.go", "Go"); err != nil {
		t.Fatalf("touch failed: %v", err)
	}

	m := NewModel(st)
	if len(m.recents) != 2 {
		t.Fatalf("expected 2 recents, got %d", len(m.recents))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	choice := m.Choice()
	if choice == nil {
		t.Fatalf("expected a choice after enter")
	}
	if choice.Path != "/tmp/new.go" {
		t.Fatalf("expected most recent entry selected, got %q", choice.Path)
	}
}

func TestQuitWithoutChoice(t *testing.T) {
	st := newTestStore(t)
	m := NewModel(st)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.Choice() != nil {
		t.Fatalf("expected no choice after quit")
	}
}

func TestForgetRemovesRow(t *testing.T) {
	st := newTestStore(t)
	if err := st.Touch(context.Background(), "/tmp/a.go", "Go"); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	m := NewModel(st)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if len(m.recents) != 0 {
		t.Fatalf("expected entry forgotten, got %d", len(m.recents))
	}
}
