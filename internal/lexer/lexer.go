// Package lexer adapts Chroma lexers to the token map the core consumes.
package lexer

import (
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/typefirst/overtype/internal/token"
)

// Tokenize lexes text with the named Chroma lexer and returns an ordered,
// non-overlapping span map over the text's code points. An empty or unknown
// language, or any lexer failure, falls back to the plain-text map; the
// result always satisfies the token.Map invariants.
func Tokenize(text, language string) token.Map {
	n := utf8.RuneCountInString(text)
	if language == "" {
		return token.Plain(n)
	}
	lex := lexers.Get(language)
	if lex == nil {
		return token.Plain(n)
	}
	lex = chroma.Coalesce(lex)
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return token.Plain(n)
	}

	var spans []token.Span
	offset := 0
	for _, tok := range it.Tokens() {
		width := utf8.RuneCountInString(tok.Value)
		if width == 0 {
			continue
		}
		cat := categoryOf(tok.Type)
		if last := len(spans) - 1; last >= 0 && spans[last].End == offset && spans[last].Category == cat {
			spans[last].End = offset + width
		} else {
			spans = append(spans, token.Span{Start: offset, End: offset + width, Category: cat})
		}
		offset += width
	}

	m, err := token.NewMap(n, spans)
	if err != nil {
		return token.Plain(n)
	}
	return m
}

// DetectLanguage guesses the lexer name from a file name, returning "" when
// no lexer matches.
func DetectLanguage(path string) string {
	lex := lexers.Match(filepath.Base(path))
	if lex == nil {
		return ""
	}
	return lex.Config().Name
}

// Names lists the available lexer names in sorted order.
func Names() []string {
	names := lexers.Names(false)
	sort.Strings(names)
	return names
}

func categoryOf(t chroma.TokenType) token.Category {
	switch t.Category() {
	case chroma.Keyword:
		return token.Keyword
	case chroma.Name:
		return token.Name
	case chroma.Literal:
		switch t.SubCategory() {
		case chroma.LiteralString:
			return token.String
		case chroma.LiteralNumber:
			return token.Number
		}
		return token.Default
	case chroma.Operator:
		return token.Operator
	case chroma.Punctuation:
		return token.Punctuation
	case chroma.Comment:
		return token.Comment
	}
	return token.Default
}
