package chi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	healthuc "github.com/kailas-cloud/healthdir/internal/usecase/health"
	searchuc "github.com/kailas-cloud/healthdir/internal/usecase/search"
)

// fakeRepo serves a fixed corpus per kind.
type fakeRepo struct {
	mu      sync.Mutex
	records map[entity.Kind][]entity.Record
	err     error
	calls   []entity.Kind
}

func (f *fakeRepo) ListTreatments(ctx context.Context) ([]entity.Record, error) {
	return f.ListByKind(ctx, entity.Treatment)
}

func (f *fakeRepo) ListByKind(_ context.Context, kind entity.Kind) ([]entity.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, kind)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.records[kind], nil
}

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

func directory() *fakeRepo {
	return &fakeRepo{records: map[entity.Kind][]entity.Record{
		entity.Treatment: {
			entity.Reconstruct(entity.Treatment, entity.Fields{
				ID:          "t-cbt",
				Name:        "Cognitive Behavioral Therapy",
				Slug:        "cbt",
				Description: "Structured talk therapy for anxiety and depression.",
				Category:    "Psychotherapy",
			}),
			entity.Reconstruct(entity.Treatment, entity.Fields{
				ID:          "t-sertraline",
				Name:        "Sertraline",
				Slug:        "sertraline",
				Description: "An SSRI antidepressant.",
				Metadata:    map[string]any{"brand_names": []any{"Zoloft"}},
			}),
		},
		entity.Condition: {
			entity.Reconstruct(entity.Condition, entity.Fields{
				ID:          "c-gad",
				Name:        "Generalized Anxiety Disorder",
				Slug:        "gad",
				Description: "Persistent, excessive worry.",
			}),
			entity.Reconstruct(entity.Condition, entity.Fields{
				ID:          "c-mdd",
				Name:        "Major Depressive Disorder",
				Slug:        "mdd",
				Description: "Often treated with zoloft or therapy.",
			}),
		},
		entity.Resource: {
			entity.Reconstruct(entity.Resource, entity.Fields{
				ID:    "r-988",
				Title: "988 Lifeline",
				Slug:  "988",
				Content: map[string]any{
					"sections": []any{map[string]any{"body": "Call if a panic attack or anxiety feels unmanageable."}},
				},
			}),
		},
	}}
}

var errUpstream = errors.New("connection reset by peer")

func newTestServer(t *testing.T, repo *fakeRepo) *Server {
	t.Helper()
	return NewServer(searchuc.New(repo), healthuc.New(&fakePinger{}))
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func newTestRouter(t *testing.T, s *Server, apiKeys ...string) http.Handler {
	t.Helper()
	return NewRouter(s, zap.NewNop(), apiKeys)
}
