// Package session implements the typing position tracker: the target text,
// the typing cursor, and the per-offset correctness history.
package session

// EventKind discriminates keystroke events handed to the tracker.
type EventKind int

// Keystroke event kinds. Anything a key handler cannot map onto one of the
// first four kinds must be reported as EventOther, which the tracker ignores.
const (
	EventRune EventKind = iota
	EventEnter
	EventTab
	EventBackspace
	EventOther
)

// Event is a single classified keystroke. Rune is only meaningful for
// EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// RuneEvent builds a printable-character event.
func RuneEvent(r rune) Event {
	return Event{Kind: EventRune, Rune: r}
}

// OutcomeKind discriminates the result of applying an event.
type OutcomeKind int

// Outcome kinds. AtEnd and AtStart are defined no-ops, not errors: the
// caller decides whether to alert the user.
const (
	Advanced OutcomeKind = iota
	Retreated
	Ignored
	AtEnd
	AtStart
)

// Outcome describes the state transition performed by one call. Offset,
// Correct and Glyph are only meaningful for Advanced (all three) and
// Retreated (Offset only).
//
// For an Advanced outcome, Glyph is the character to display at Offset: the
// target character when the keystroke was correct, the typed character when
// a printable character was wrong, and the expected target character when a
// structural key (Enter, Tab) was pressed in the wrong place, since those
// keys have no glyph of their own.
type Outcome struct {
	Kind    OutcomeKind
	Offset  int
	Correct bool
	Glyph   rune
}

// Tracker owns the target text, the cursor and the verdict history for one
// practice session. Offsets are Unicode code points. The tracker is a
// strictly sequential tape: only the offset at the cursor ever transitions,
// by exactly one position per call.
//
// Tracker is not safe for concurrent use; callers must serialize all calls
// onto one event stream.
type Tracker struct {
	target  []rune
	pos     int
	matched []bool
}

// New returns a tracker positioned at the start of text.
func New(text string) *Tracker {
	t := &Tracker{}
	t.Reset(text)
	return t
}

// Reset replaces the target text, moves the cursor to 0 and discards all
// verdicts. It always succeeds.
func (t *Tracker) Reset(text string) {
	t.target = []rune(text)
	t.pos = 0
	t.matched = t.matched[:0]
}

// Apply dispatches one keystroke event: backspace retreats, everything else
// advances.
func (t *Tracker) Apply(ev Event) Outcome {
	if ev.Kind == EventBackspace {
		return t.Retreat()
	}
	return t.Advance(ev)
}

// Advance consumes one non-backspace keystroke at the cursor. At the end of
// the text it is a no-op returning AtEnd; for EventOther it is a no-op
// returning Ignored. Otherwise it records the verdict for the cursor offset,
// moves the cursor forward by one and returns Advanced.
func (t *Tracker) Advance(ev Event) Outcome {
	if t.pos >= len(t.target) {
		return Outcome{Kind: AtEnd}
	}
	expected := t.target[t.pos]
	var correct bool
	var glyph rune
	switch ev.Kind {
	case EventEnter:
		correct = expected == '\n'
		glyph = expected
	case EventTab:
		correct = expected == '\t'
		glyph = expected
	case EventRune:
		correct = ev.Rune == expected
		if correct {
			glyph = expected
		} else {
			glyph = ev.Rune
		}
	default:
		return Outcome{Kind: Ignored}
	}
	t.matched = append(t.matched, correct)
	t.pos++
	return Outcome{Kind: Advanced, Offset: t.pos - 1, Correct: correct, Glyph: glyph}
}

// Retreat un-types the offset before the cursor, removing its verdict
// entirely. At the start of the text it is a no-op returning AtStart.
func (t *Tracker) Retreat() Outcome {
	if t.pos == 0 {
		return Outcome{Kind: AtStart}
	}
	t.pos--
	t.matched = t.matched[:t.pos]
	return Outcome{Kind: Retreated, Offset: t.pos}
}

// Pos returns the cursor: the offset of the next character to type.
func (t *Tracker) Pos() int {
	return t.pos
}

// Len returns the target length in code points.
func (t *Tracker) Len() int {
	return len(t.target)
}

// Done reports whether every offset has been typed.
func (t *Tracker) Done() bool {
	return t.pos == len(t.target)
}

// At returns the target character at offset. Offset must be in [0, Len).
func (t *Tracker) At(offset int) rune {
	return t.target[offset]
}

// Matched reports the verdict recorded at offset. It returns false for
// offsets at or past the cursor, which have no verdict.
func (t *Tracker) Matched(offset int) bool {
	if offset < 0 || offset >= t.pos {
		return false
	}
	return t.matched[offset]
}
