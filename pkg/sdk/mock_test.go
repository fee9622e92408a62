package healthdir

import (
	"context"
	"time"

	"github.com/kailas-cloud/healthdir/internal/domain/search/request"
	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/healthdir/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req *request.Request) ([]result.Result, int, error)
	calls    int
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request) ([]result.Result, int, error) {
	m.calls++
	return m.searchFn(ctx, req)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- db.Store mock ---

type mockStore struct {
	pingErr error
	closed  bool
}

func (m *mockStore) Ping(context.Context) error { return m.pingErr }

func (m *mockStore) Close() { m.closed = true }

func (m *mockStore) WaitForReady(context.Context, time.Duration) error { return m.pingErr }

func newTestClient(search searchUseCase, obs *observer) (*Client, *mockStore) {
	store := &mockStore{}
	return &Client{
		store:     store,
		searchSvc: search,
		healthSvc: &mockHealthUC{},
		obs:       obs,
	}, store
}
