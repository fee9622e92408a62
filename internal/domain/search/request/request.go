package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	"github.com/kailas-cloud/healthdir/internal/domain/search/query"
)

// MaxQueryLength is the maximum allowed trimmed query length in bytes.
const MaxQueryLength = 1024

// Request is a validated search request.
type Request struct {
	query  query.Query
	kind   entity.Kind
	limit  int
	offset int
}

// New validates search parameters. A short query is reported before any
// other problem. kind may be empty (all kinds). limit 0 means no limit.
func New(raw string, kind entity.Kind, limit, offset int) (Request, error) {
	trimmed := strings.TrimSpace(raw)
	q, err := query.Parse(trimmed)
	if err != nil {
		return Request{}, err
	}
	if len(trimmed) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w (max %d bytes)", domain.ErrQueryTooLong, MaxQueryLength)
	}
	if kind != "" && !kind.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("%w: limit must be >= 0, got %d", domain.ErrInvalidPagination, limit)
	}
	if offset < 0 {
		return Request{}, fmt.Errorf("%w: offset must be >= 0, got %d", domain.ErrInvalidPagination, offset)
	}
	return Request{query: q, kind: kind, limit: limit, offset: offset}, nil
}

// Query returns the normalized query.
func (r *Request) Query() query.Query { return r.query }

// Kind returns the kind filter, empty for all kinds.
func (r *Request) Kind() entity.Kind { return r.kind }

// Kinds returns the kinds to load, in corpus order.
func (r *Request) Kinds() []entity.Kind {
	if r.kind == "" {
		return entity.Kinds()
	}
	return []entity.Kind{r.kind}
}

// Limit returns the page size, 0 for unlimited.
func (r *Request) Limit() int { return r.limit }

// Offset returns the number of ranked results to skip.
func (r *Request) Offset() int { return r.offset }
