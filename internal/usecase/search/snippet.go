package search

import (
	"strings"

	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
	"github.com/kailas-cloud/healthdir/internal/domain/text"
)

// Window radii in runes around the first occurrence of a term.
const (
	descriptionRadius  = 80
	contentRadius      = 100
	contentTightRadius = 60
)

const ellipsis = "..."

var jsonStripper = strings.NewReplacer(
	"{", " ", "}", " ",
	"[", " ", "]", " ",
	`"`, " ", ":", " ", ",", " ",
)

// extractSnippets returns at most one snippet per term. Every snippet
// contains its term; terms with no verified snippet are omitted.
func extractSnippets(c *candidate, terms []string) []result.Snippet {
	name := c.rec.Name()
	description := c.rec.Description()
	category := c.rec.Category()

	snippets := make([]result.Snippet, 0, len(terms))
	for _, term := range terms {
		if s, ok := wholeFieldSnippet(name, term); ok {
			snippets = append(snippets, result.Snippet{Term: term, Field: result.FieldName, Snippet: s})
			continue
		}
		if s, ok := descriptionSnippet(description, term); ok {
			snippets = append(snippets, result.Snippet{Term: term, Field: result.FieldDescription, Snippet: s})
			continue
		}
		if s, ok := wholeFieldSnippet(category, term); ok {
			snippets = append(snippets, result.Snippet{Term: term, Field: result.FieldCategory, Snippet: s})
			continue
		}
		if s, ok := contentSnippet(c.contentJSON, term); ok {
			snippets = append(snippets, result.Snippet{Term: term, Field: result.FieldContent, Snippet: s})
		}
	}
	return snippets
}

// wholeFieldSnippet returns the whitespace-normalized field when it contains term.
func wholeFieldSnippet(field, term string) (string, bool) {
	cleaned := text.Collapse(field)
	if cleaned == "" || !text.ContainsFolded(cleaned, term) {
		return "", false
	}
	return cleaned, true
}

// descriptionSnippet cuts a window around the first occurrence of term.
func descriptionSnippet(description, term string) (string, bool) {
	src := []rune(description)
	idx := text.RuneIndex(text.Fold(description), term)
	if idx < 0 {
		return "", false
	}
	start, end := window(len(src), idx, runeLen(term), descriptionRadius)

	snippet := text.Collapse(string(src[start:end]))
	if !text.ContainsFolded(snippet, term) {
		return "", false
	}
	return decorate(snippet, start > 0, end < len(src)), true
}

// contentSnippet cuts a window out of the serialized content, strips JSON
// punctuation and re-centers a tighter window on the term. The term is
// re-verified after each transformation.
func contentSnippet(blob, term string) (string, bool) {
	if blob == "" {
		return "", false
	}
	src := []rune(blob)
	idx := text.RuneIndex(text.Fold(blob), term)
	if idx < 0 {
		return "", false
	}
	start, end := window(len(src), idx, runeLen(term), contentRadius)

	cleaned := text.Collapse(jsonStripper.Replace(string(src[start:end])))
	cleanedIdx := text.RuneIndex(text.Fold(cleaned), term)
	if cleanedIdx < 0 {
		return "", false
	}

	cleanedRunes := []rune(cleaned)
	tStart, tEnd := window(len(cleanedRunes), cleanedIdx, runeLen(term), contentTightRadius)
	snippet := strings.TrimSpace(string(cleanedRunes[tStart:tEnd]))
	if !text.ContainsFolded(snippet, term) {
		return "", false
	}

	truncatedLeft := start > 0 || tStart > 0
	truncatedRight := end < len(src) || tEnd < len(cleanedRunes)
	return decorate(snippet, truncatedLeft, truncatedRight), true
}

// window returns [start, end) covering radius runes on each side of the
// match at idx, clamped to [0, n).
func window(n, idx, termLen, radius int) (start, end int) {
	start = max(0, idx-radius)
	end = min(n, idx+termLen+radius)
	return start, end
}

func decorate(s string, left, right bool) string {
	if left {
		s = ellipsis + s
	}
	if right {
		s += ellipsis
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}
