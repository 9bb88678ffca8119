package tui

import "testing"

func plainCells(s string) []styledCell {
	out := make([]styledCell, 0, len(s))
	for i, r := range []rune(s) {
		out = append(out, styledCell{
			idx:     i,
			s:       string(r),
			width:   1,
			isSpace: r == ' ',
			isBreak: r == '\n',
		})
	}
	return out
}

func TestWrapCellsHardBreaks(t *testing.T) {
	lines := wrapCells(plainCells("ab\ncd"), 80)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len(lines[0]) != 3 {
		t.Fatalf("expected newline cell kept on its line, got %d cells", len(lines[0]))
	}
	if renderLine(lines[1]) != "cd" {
		t.Fatalf("unexpected second line: %q", renderLine(lines[1]))
	}
}

func TestWrapCellsSoftWrapAtSpace(t *testing.T) {
	lines := wrapCells(plainCells("one two three"), 8)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if renderLine(lines[1]) != "three" {
		t.Fatalf("expected wrap before %q, got %q", "three", renderLine(lines[1]))
	}
}

func TestWrapCellsHardBreakForLongRun(t *testing.T) {
	lines := wrapCells(plainCells("abcdefgh"), 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if renderLine(lines[0]) != "abc" {
		t.Fatalf("unexpected first line: %q", renderLine(lines[0]))
	}
}

func TestWrapCellsZeroWidthNeverWraps(t *testing.T) {
	lines := wrapCells(plainCells("abcdef"), 0)
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
}

func TestLineOf(t *testing.T) {
	lines := wrapCells(plainCells("ab\ncd"), 80)
	if got := lineOf(lines, 0); got != 0 {
		t.Fatalf("expected line 0 for offset 0, got %d", got)
	}
	if got := lineOf(lines, 3); got != 1 {
		t.Fatalf("expected line 1 for offset 3, got %d", got)
	}
	if got := lineOf(lines, 99); got != len(lines)-1 {
		t.Fatalf("expected last line for past-end offset, got %d", got)
	}
}
