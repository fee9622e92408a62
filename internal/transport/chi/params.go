package chi

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// searchParams holds the raw query parameters of GET /api/search.
type searchParams struct {
	Q      *string
	Type   *string
	Limit  *int
	Offset *int
}

// paramError reports a query parameter that could not be bound.
// The client sees only the parameter name; the cause goes to the logs.
type paramError struct {
	name string
	err  error
}

func (e *paramError) Error() string { return e.message() + ": " + e.err.Error() }

func (e *paramError) Unwrap() error { return e.err }

func (e *paramError) message() string { return "invalid format for parameter " + e.name }

// bindSearchParams binds parameters in order and stops at the first failure.
// Parameters bound before the failure stay set on the returned value.
func bindSearchParams(r *http.Request) (searchParams, error) {
	var p searchParams
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"type", &p.Type},
		{"limit", &p.Limit},
		{"offset", &p.Offset},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return p, &paramError{name: b.name, err: err}
		}
	}
	return p, nil
}

// Limits bounds the page size. Zero values mean unlimited.
type Limits struct {
	Default int
	Max     int
}

// apply resolves the effective limit. Negative input passes through for validation.
func (l Limits) apply(requested *int) int {
	limit := l.Default
	if requested != nil {
		limit = *requested
	}
	if limit < 0 {
		return limit
	}
	if l.Max > 0 && (limit == 0 || limit > l.Max) {
		return l.Max
	}
	return limit
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
