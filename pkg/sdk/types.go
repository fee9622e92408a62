package healthdir

// Kind names a directory collection.
type Kind string

// Kind constants.
const (
	KindTreatment Kind = "treatment"
	KindCondition Kind = "condition"
	KindResource  Kind = "resource"
)

// SearchOptions narrows and pages a search. Zero values search every kind
// and return the full ranked list.
type SearchOptions struct {
	Type   Kind
	Limit  int
	Offset int
}

// Snippet shows where a query term occurred.
type Snippet struct {
	Term  string
	Field string // Name, Description, Category or Content
	Text  string
}

// SearchResult is one matched directory record.
type SearchResult struct {
	Type        Kind
	ID          string
	Slug        string
	Name        string
	Description string
	Category    string
	Snippets    []Snippet
	MatchCount  int
}

// SearchResponse is a ranked page of results.
// TotalCount counts every match before Limit and Offset apply.
type SearchResponse struct {
	Results    []SearchResult
	TotalCount int
}
