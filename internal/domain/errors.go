package domain

import "errors"

var (
	// ErrQueryTooShort signals a search query below the minimum length.
	ErrQueryTooShort = errors.New("query too short")
	// ErrInvalidKind signals an unknown record kind filter.
	ErrInvalidKind = errors.New("invalid record kind")
	// ErrInvalidPagination signals a negative limit or offset.
	ErrInvalidPagination = errors.New("invalid pagination")
	// ErrQueryTooLong signals a search query above the maximum length.
	ErrQueryTooLong = errors.New("query too long")
	// ErrUpstreamFetch signals a failure while loading the search corpus.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)
