// Package render projects tracker outcomes onto display directives.
package render

import (
	"github.com/typefirst/overtype/internal/session"
	"github.com/typefirst/overtype/internal/token"
)

// Class is the display classification of one offset.
type Class int

// Untyped text shows the faint variant of its category color, Correct the
// full variant, Incorrect a fixed error style that overrides the category.
const (
	Untyped Class = iota
	Correct
	Incorrect
)

func (c Class) String() string {
	switch c {
	case Untyped:
		return "untyped"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "class(?)"
}

// Directive instructs the rendering surface to show Glyph at Offset with the
// given classification. Category is the lexical category of the offset; for
// Incorrect it is informational only, the error style wins.
type Directive struct {
	Offset   int
	Glyph    rune
	Class    Class
	Category token.Category
}

// Projector turns tracker outcomes into directives using an immutable token
// map for category lookup. Steady-state projection emits at most one
// directive per outcome; a full refresh emits one per offset.
type Projector struct {
	tracker *session.Tracker
	tokens  token.Map
}

// NewProjector builds a projector over tracker and tokens.
func NewProjector(tracker *session.Tracker, tokens token.Map) *Projector {
	return &Projector{tracker: tracker, tokens: tokens}
}

// SetTokens swaps the token map, e.g. after a highlight mode switch. The
// caller must follow up with FullRefresh to repaint.
func (p *Projector) SetTokens(tokens token.Map) {
	p.tokens = tokens
}

// CategoryAt returns the lexical category owning offset.
func (p *Projector) CategoryAt(offset int) token.Category {
	return p.tokens.CategoryAt(offset)
}

// Project translates one outcome into directives. Boundary and ignored
// outcomes produce none.
func (p *Projector) Project(out session.Outcome) []Directive {
	switch out.Kind {
	case session.Advanced:
		class := Correct
		if !out.Correct {
			class = Incorrect
		}
		return []Directive{{
			Offset:   out.Offset,
			Glyph:    out.Glyph,
			Class:    class,
			Category: p.tokens.CategoryAt(out.Offset),
		}}
	case session.Retreated:
		return []Directive{{
			Offset:   out.Offset,
			Glyph:    p.tracker.At(out.Offset),
			Class:    Untyped,
			Category: p.tokens.CategoryAt(out.Offset),
		}}
	default:
		return nil
	}
}

// FullRefresh re-asserts the classification of every offset: typed offsets
// as Correct, the rest as Untyped. Per-offset wrongness is not retained, so
// a refresh after a mode switch forgets prior incorrect markings.
func (p *Projector) FullRefresh() []Directive {
	n := p.tracker.Len()
	pos := p.tracker.Pos()
	dirs := make([]Directive, 0, n)
	for i := 0; i < n; i++ {
		class := Untyped
		if i < pos {
			class = Correct
		}
		dirs = append(dirs, Directive{
			Offset:   i,
			Glyph:    p.tracker.At(i),
			Class:    class,
			Category: p.tokens.CategoryAt(i),
		})
	}
	return dirs
}
