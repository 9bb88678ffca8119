// Package source acquires target text from files and the clipboard.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
)

// LoadFile reads a file as UTF-8 target text with line endings normalized
// to "\n".
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(data)
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}
	return Normalize(text), nil
}

// FromClipboard reads the clipboard as target text with line endings
// normalized to "\n". An empty clipboard is an error.
func FromClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("clipboard is empty")
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("clipboard content is not valid UTF-8")
	}
	return Normalize(text), nil
}

// Normalize converts CRLF and lone CR line endings to LF.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
