// Package chi exposes the directory search over HTTP with the chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	"github.com/kailas-cloud/healthdir/internal/domain/search/request"
	"github.com/kailas-cloud/healthdir/internal/logger"
	healthuc "github.com/kailas-cloud/healthdir/internal/usecase/health"
	searchuc "github.com/kailas-cloud/healthdir/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the search, health and metrics endpoints.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	limits        Limits
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service) *Server {
	return &Server{
		search: search,
		health: health,
		errorHandlers: []errorHandler{
			paramErrorHandler,
			sentinelHandler(domain.ErrInvalidKind, http.StatusBadRequest),
			sentinelHandler(domain.ErrInvalidPagination, http.StatusBadRequest),
			sentinelHandler(domain.ErrQueryTooLong, http.StatusBadRequest),
		},
	}
}

// WithLimits configures default and maximum page sizes.
func (s *Server) WithLimits(l Limits) *Server {
	s.limits = l
	return s
}

// Search handles GET /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	// A short query answers 200 even when other parameters are malformed.
	params, bindErr := bindSearchParams(r)
	req, err := request.New(
		deref(params.Q),
		entity.Kind(deref(params.Type)),
		s.limits.apply(params.Limit),
		deref(params.Offset),
	)
	if errors.Is(err, domain.ErrQueryTooShort) {
		writeJSON(w, http.StatusOK, shortQueryResponse{
			Results: []searchResultItem{},
			Message: shortQueryMessage,
		})
		return
	}
	if bindErr != nil {
		s.handleError(ctx, w, bindErr, start)
		return
	}
	if err != nil {
		s.handleError(ctx, w, err, start)
		return
	}

	ctx = logger.With(ctx,
		zap.String("query", req.Query().Text()),
		zap.String("type", string(req.Kind())),
	)
	results, total, err := s.search.Search(ctx, &req)
	if err != nil {
		s.handleError(ctx, w, err, start)
		return
	}

	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToDTO(&results[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:    items,
		TotalCount: total,
		LoadTimeMs: time.Since(start).Milliseconds(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// Only the sentinel text reaches the client.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, sentinel.Error())
		return true
	}
}

// paramErrorHandler answers 400 for unbindable query parameters.
func paramErrorHandler(w http.ResponseWriter, err error) bool {
	var pe *paramError
	if !errors.As(err, &pe) {
		return false
	}
	writeError(w, http.StatusBadRequest, pe.message())
	return true
}

func (s *Server) handleError(ctx context.Context, w http.ResponseWriter, err error, start time.Time) {
	log := logger.FromContext(ctx)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("search rejected", zap.Error(err))
			return
		}
	}
	log.Error("search failed",
		zap.Error(err),
		zap.Duration("elapsed", time.Since(start)),
	)
	writeError(w, http.StatusInternalServerError, searchFailedMessage)
}
