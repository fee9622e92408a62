package entity

import (
	"context"

	"github.com/kailas-cloud/healthdir/internal/db"
)

// mockStore implements documentStore for tests.
type mockStore struct {
	scanFn    func(ctx context.Context, pattern string) ([]string, error)
	jsonGetFn func(ctx context.Context, keys []string, path string) ([][]byte, error)
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, keys, path)
	}
	return make([][]byte, len(keys)), nil
}

// mockLister implements entityLister for tests.
type mockLister struct {
	listFn func(ctx context.Context, kind string) ([]db.EntityRow, error)
}

func (m *mockLister) ListEntities(ctx context.Context, kind string) ([]db.EntityRow, error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind)
	}
	return nil, nil
}

// docsByKey serves JSON.GET results from a fixture map.
func docsByKey(fixtures map[string]string) func(context.Context, []string, string) ([][]byte, error) {
	return func(_ context.Context, keys []string, _ string) ([][]byte, error) {
		out := make([][]byte, len(keys))
		for i, k := range keys {
			if v, ok := fixtures[k]; ok {
				out[i] = []byte(v)
			}
		}
		return out, nil
	}
}
