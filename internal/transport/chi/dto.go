package chi

import "github.com/kailas-cloud/healthdir/internal/domain/search/result"

// shortQueryMessage accompanies the empty result list for queries under the minimum length.
const shortQueryMessage = "Search query must be at least 2 characters"

// searchFailedMessage is the only error detail exposed for upstream failures.
const searchFailedMessage = "Search failed. Please try again."

type searchResponse struct {
	Results    []searchResultItem `json:"results"`
	TotalCount int                `json:"totalCount"`
	LoadTimeMs int64              `json:"loadTimeMs"`
}

type shortQueryResponse struct {
	Results []searchResultItem `json:"results"`
	Message string             `json:"message"`
}

type searchResultItem struct {
	Type        string        `json:"type"`
	ID          string        `json:"id"`
	Slug        string        `json:"slug,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Snippets    []snippetItem `json:"snippets"`
	MatchCount  int           `json:"matchCount"`
}

type snippetItem struct {
	Term    string `json:"term"`
	Field   string `json:"field"`
	Snippet string `json:"snippet"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchResultToDTO(r *result.Result) searchResultItem {
	snippets := make([]snippetItem, len(r.Snippets()))
	for i, s := range r.Snippets() {
		snippets[i] = snippetItem{Term: s.Term, Field: s.Field, Snippet: s.Snippet}
	}
	return searchResultItem{
		Type:        string(r.Kind()),
		ID:          r.ID(),
		Slug:        r.Slug(),
		Name:        r.Name(),
		Description: r.Description(),
		Category:    r.Category(),
		Snippets:    snippets,
		MatchCount:  r.MatchCount(),
	}
}
