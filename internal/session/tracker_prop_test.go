package session

import (
	"testing"

	"pgregory.net/rapid"
)

func TestTrackerPosStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.StringN(0, 40, -1).Draw(t, "target")
		tr := New(target)
		n := tr.Len()

		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 0, 200).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				tr.Advance(RuneEvent('a'))
			case 1:
				tr.Advance(Event{Kind: EventEnter})
			case 2:
				tr.Advance(Event{Kind: EventTab})
			case 3:
				tr.Advance(Event{Kind: EventOther})
			case 4:
				tr.Retreat()
			}
			if tr.Pos() < 0 || tr.Pos() > n {
				t.Fatalf("pos %d out of [0,%d]", tr.Pos(), n)
			}
		}
	})
}

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.StringN(1, 30, -1).Draw(t, "target")
		tr := New(target)

		prefix := rapid.IntRange(0, tr.Len()-1).Draw(t, "prefix")
		for i := 0; i < prefix; i++ {
			tr.Advance(RuneEvent(tr.At(i)))
		}
		before := snapshot(tr)

		typed := rapid.Rune().Draw(t, "typed")
		if out := tr.Advance(RuneEvent(typed)); out.Kind != Advanced {
			t.Fatalf("expected Advanced below end, got %v", out.Kind)
		}
		if out := tr.Retreat(); out.Kind != Retreated {
			t.Fatalf("expected Retreated after advance, got %v", out.Kind)
		}

		after := snapshot(tr)
		if before.pos != after.pos {
			t.Fatalf("round trip moved pos: %d -> %d", before.pos, after.pos)
		}
		for i := range before.matched {
			if before.matched[i] != after.matched[i] {
				t.Fatalf("round trip changed verdict at %d", i)
			}
		}
	})
}

func TestIgnoredEventsNeverMutate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.StringN(0, 30, -1).Draw(t, "target")
		tr := New(target)
		prefix := rapid.IntRange(0, tr.Len()).Draw(t, "prefix")
		for i := 0; i < prefix; i++ {
			tr.Advance(RuneEvent(tr.At(i)))
		}
		before := snapshot(tr)
		tr.Advance(Event{Kind: EventOther})
		after := snapshot(tr)
		if before.pos != after.pos {
			t.Fatalf("ignored event moved pos")
		}
		for i := range before.matched {
			if before.matched[i] != after.matched[i] {
				t.Fatalf("ignored event changed verdict at %d", i)
			}
		}
	})
}

type trackerSnapshot struct {
	pos     int
	matched []bool
}

func snapshot(tr *Tracker) trackerSnapshot {
	s := trackerSnapshot{pos: tr.Pos(), matched: make([]bool, tr.Len())}
	for i := 0; i < tr.Pos(); i++ {
		s.matched[i] = tr.Matched(i)
	}
	return s
}
