package query

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/text"
)

// Query is a normalized free-text search query.
type Query struct {
	terms []string
}

// Parse trims and folds raw, then splits it on whitespace into terms.
// Repeated terms are kept. Returns domain.ErrQueryTooShort when fewer than
// domain.MinQueryLength characters remain after trimming.
func Parse(raw string) (Query, error) {
	folded := text.Fold(strings.TrimSpace(raw))
	if utf8.RuneCountInString(folded) < domain.MinQueryLength {
		return Query{}, domain.ErrQueryTooShort
	}
	return Query{terms: strings.Fields(folded)}, nil
}

// Terms returns the folded terms in query order.
func (q Query) Terms() []string { return q.terms }

// Text returns the full folded query with terms joined by single spaces.
func (q Query) Text() string { return strings.Join(q.terms, " ") }
