package result

import "github.com/kailas-cloud/healthdir/internal/domain/entity"

// Snippet field labels, in extraction priority order.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldCategory    = "Category"
	FieldContent     = "Content"
)

// Snippet shows where a single query term occurred in a record.
type Snippet struct {
	Term    string
	Field   string
	Snippet string
}

// Result is a single matched record.
type Result struct {
	kind        entity.Kind
	id          string
	slug        string
	name        string
	description string
	category    string
	brandNames  []string
	snippets    []Snippet
	matchCount  int
}

// New creates a search result from a matched record.
func New(rec *entity.Record, snippets []Snippet, matchCount int) Result {
	return Result{
		kind:        rec.Kind(),
		id:          rec.ID(),
		slug:        rec.Slug(),
		name:        rec.Name(),
		description: rec.Description(),
		category:    rec.Category(),
		brandNames:  rec.BrandNames(),
		snippets:    snippets,
		matchCount:  matchCount,
	}
}

// Kind returns the source collection of the matched record.
func (r *Result) Kind() entity.Kind { return r.kind }

// ID returns the record identifier.
func (r *Result) ID() string { return r.id }

// Slug returns the record slug.
func (r *Result) Slug() string { return r.slug }

// Name returns the display name.
func (r *Result) Name() string { return r.name }

// Description returns the record description.
func (r *Result) Description() string { return r.description }

// Category returns the record category.
func (r *Result) Category() string { return r.category }

// BrandNames returns the brand names used for ranking. Not part of the API response.
func (r *Result) BrandNames() []string { return r.brandNames }

// Snippets returns at most one snippet per query term.
func (r *Result) Snippets() []Snippet { return r.snippets }

// MatchCount returns the number of query terms found in the record.
func (r *Result) MatchCount() int { return r.matchCount }
