package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/typefirst/overtype/internal/token"
)

const goSnippet = "package main\n\nfunc main() {\n\tprintln(\"héllo\", 42)\n}\n"

func TestTokenizeGoSatisfiesSpanInvariants(t *testing.T) {
	m := Tokenize(goSnippet, "go")
	n := utf8.RuneCountInString(goSnippet)
	if m.Len() != n {
		t.Fatalf("expected map length %d, got %d", n, m.Len())
	}
	spans := m.Spans()
	if len(spans) < 2 {
		t.Fatalf("expected the Go lexer to produce several spans, got %d", len(spans))
	}
	prevEnd := 0
	for i, s := range spans {
		if s.Start < prevEnd {
			t.Fatalf("span %d overlaps previous: %+v", i, s)
		}
		if s.Start >= s.End || s.End > n {
			t.Fatalf("span %d out of range: %+v", i, s)
		}
		prevEnd = s.End
	}
}

func TestTokenizeGoCategorizesKeyword(t *testing.T) {
	m := Tokenize(goSnippet, "go")
	// "package" occupies offsets [0,7).
	for i := 0; i < 7; i++ {
		if got := m.CategoryAt(i); got != token.Keyword {
			t.Fatalf("offset %d: expected keyword, got %v", i, got)
		}
	}
}

func TestTokenizeUnknownLanguageFallsBackToPlain(t *testing.T) {
	m := Tokenize("hello world", "no-such-language")
	if len(m.Spans()) != 1 {
		t.Fatalf("expected single plain span, got %d", len(m.Spans()))
	}
	if m.CategoryAt(0) != token.Default {
		t.Fatalf("expected default category")
	}
}

func TestTokenizeEmptyLanguageIsPlain(t *testing.T) {
	m := Tokenize("hello", "")
	if m.Len() != 5 || len(m.Spans()) != 1 {
		t.Fatalf("expected plain map over 5 runes, got len %d spans %d", m.Len(), len(m.Spans()))
	}
}

func TestTokenizeCountsCodePoints(t *testing.T) {
	text := "héé"
	m := Tokenize(text, "no-such-language")
	if m.Len() != 3 {
		t.Fatalf("expected 3 code points, got %d", m.Len())
	}
}

func TestDetectLanguage(t *testing.T) {
	if got := DetectLanguage("main.go"); got != "Go" {
		t.Fatalf("expected Go for main.go, got %q", got)
	}
	if got := DetectLanguage("notes.unknownext"); got != "" {
		t.Fatalf("expected empty language for unknown extension, got %q", got)
	}
}

func TestNamesIncludesCommonLexers(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("expected lexer names")
	}
	found := false
	for _, name := range names {
		if name == "Go" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected Go in lexer names")
	}
}
