package healthdir

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	"github.com/kailas-cloud/healthdir/internal/domain/search/request"
	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
)

// Search runs a multi-term relevance search. Every whitespace-separated term
// must occur somewhere in a record for it to match.
func (c *Client) Search(ctx context.Context, q string, opts SearchOptions) (resp SearchResponse, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("search", start, err, "matched", resp.TotalCount)
	}()

	req, err := request.New(q, entity.Kind(opts.Type), opts.Limit, opts.Offset)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search: %w", err)
	}

	results, total, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search: %w", err)
	}

	out := make([]SearchResult, len(results))
	for i := range results {
		out[i] = resultFromDomain(&results[i])
	}
	return SearchResponse{Results: out, TotalCount: total}, nil
}

func resultFromDomain(r *result.Result) SearchResult {
	snippets := make([]Snippet, len(r.Snippets()))
	for i, s := range r.Snippets() {
		snippets[i] = Snippet{Term: s.Term, Field: s.Field, Text: s.Snippet}
	}
	return SearchResult{
		Type:        Kind(r.Kind()),
		ID:          r.ID(),
		Slug:        r.Slug(),
		Name:        r.Name(),
		Description: r.Description(),
		Category:    r.Category(),
		Snippets:    snippets,
		MatchCount:  r.MatchCount(),
	}
}

// isRejection reports validation errors raised before any store access.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrQueryTooShort) ||
		errors.Is(err, domain.ErrQueryTooLong) ||
		errors.Is(err, domain.ErrInvalidKind) ||
		errors.Is(err, domain.ErrInvalidPagination)
}
