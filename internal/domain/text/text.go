// Package text holds the case-folding and whitespace helpers shared by matching,
// snippet extraction and ranking.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fold lower-cases every rune. The result has the same rune count as s,
// so rune offsets into the folded string are valid offsets into s.
func Fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// Collapse trims s and replaces every whitespace run with a single space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsFolded reports whether the folded form of s contains term.
// term must already be folded.
func ContainsFolded(s, term string) bool {
	return strings.Contains(Fold(s), term)
}

// RuneIndex returns the rune offset of the first occurrence of sub in s, or -1.
func RuneIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}
