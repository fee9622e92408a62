package healthdir

import "github.com/kailas-cloud/healthdir/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrQueryTooShort     = domain.ErrQueryTooShort
	ErrQueryTooLong      = domain.ErrQueryTooLong
	ErrInvalidKind       = domain.ErrInvalidKind
	ErrInvalidPagination = domain.ErrInvalidPagination
	ErrUpstreamFetch     = domain.ErrUpstreamFetch
)
