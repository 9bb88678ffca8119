// Package token models the lexical span map of a target text.
package token

import (
	"fmt"
	"sort"
)

// Category identifies the lexical class of a span. Categories are opaque to
// the rest of the system: they are only used as lookup and styling keys.
type Category int

// The fixed category set. Offsets not covered by any span belong to Default.
const (
	Default Category = iota
	Keyword
	Name
	String
	Number
	Operator
	Punctuation
	Comment
)

// Categories lists every category, Default first.
func Categories() []Category {
	return []Category{Default, Keyword, Name, String, Number, Operator, Punctuation, Comment}
}

func (c Category) String() string {
	switch c {
	case Default:
		return "default"
	case Keyword:
		return "keyword"
	case Name:
		return "name"
	case String:
		return "string"
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Punctuation:
		return "punctuation"
	case Comment:
		return "comment"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Span categorizes the half-open offset range [Start, End).
type Span struct {
	Start    int
	End      int
	Category Category
}

// Map is an immutable ordered set of non-overlapping spans over a text of a
// known length. Gaps between spans fall back to Default.
type Map struct {
	length int
	spans  []Span
}

// NewMap validates spans against a text length: every span must satisfy
// 0 <= Start < End <= length, and spans must be in ascending,
// non-overlapping order.
func NewMap(length int, spans []Span) (Map, error) {
	if length < 0 {
		return Map{}, fmt.Errorf("negative text length %d", length)
	}
	prevEnd := 0
	for i, s := range spans {
		if s.Start < 0 || s.End > length {
			return Map{}, fmt.Errorf("span %d [%d,%d) outside text of length %d", i, s.Start, s.End, length)
		}
		if s.Start >= s.End {
			return Map{}, fmt.Errorf("span %d [%d,%d) is empty or inverted", i, s.Start, s.End)
		}
		if s.Start < prevEnd {
			return Map{}, fmt.Errorf("span %d [%d,%d) overlaps previous span ending at %d", i, s.Start, s.End, prevEnd)
		}
		prevEnd = s.End
	}
	return Map{length: length, spans: append([]Span(nil), spans...)}, nil
}

// Plain returns the plain-text fallback map: a single Default span covering
// the whole text, or no spans for an empty text.
func Plain(length int) Map {
	if length <= 0 {
		return Map{}
	}
	return Map{length: length, spans: []Span{{Start: 0, End: length, Category: Default}}}
}

// Len returns the text length the map was built for.
func (m Map) Len() int {
	return m.length
}

// Spans returns the ordered spans.
func (m Map) Spans() []Span {
	return m.spans
}

// CategoryAt returns the category of the span owning offset, or Default when
// no span covers it.
func (m Map) CategoryAt(offset int) Category {
	i := sort.Search(len(m.spans), func(i int) bool {
		return m.spans[i].End > offset
	})
	if i < len(m.spans) && m.spans[i].Start <= offset && offset < m.spans[i].End {
		return m.spans[i].Category
	}
	return Default
}
