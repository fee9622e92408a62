package search

import (
	"strings"

	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	"github.com/kailas-cloud/healthdir/internal/domain/text"
)

// candidate is a record prepared for matching. The haystack and the content
// blob are computed once per record per request.
type candidate struct {
	rec         *entity.Record
	haystack    string
	contentJSON string
}

func newCandidate(rec *entity.Record) candidate {
	contentJSON := rec.ContentJSON()
	parts := []string{
		rec.Name(),
		rec.Description(),
		rec.Slug(),
		rec.Category(),
		strings.Join(rec.BrandNames(), " "),
		rec.MetadataJSON(),
		contentJSON,
	}
	return candidate{
		rec:         rec,
		haystack:    text.Fold(strings.Join(parts, " ")),
		contentJSON: contentJSON,
	}
}

// matchesAll reports whether every term is a substring of the haystack.
// No tokenization: "therap" matches "therapist".
func (c *candidate) matchesAll(terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(c.haystack, t) {
			return false
		}
	}
	return true
}

// matchCount counts terms (duplicates included) found in the haystack.
func (c *candidate) matchCount(terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(c.haystack, t) {
			n++
		}
	}
	return n
}
