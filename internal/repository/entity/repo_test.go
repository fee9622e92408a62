package entity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/healthdir/internal/db"
	domentity "github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// --- JSONRepo ---

func TestJSONRepo_ListByKind(t *testing.T) {
	var gotPath string
	ms := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "healthdir:entity:treatment:*" {
				t.Errorf("unexpected pattern: %s", pattern)
			}
			return []string{"healthdir:entity:treatment:b", "healthdir:entity:treatment:a"}, nil
		},
	}
	fixtures := map[string]string{
		"healthdir:entity:treatment:a": `[{"id":"a","name":"Lithium","slug":"lithium"}]`,
		"healthdir:entity:treatment:b": `[{"id":"b","title":"Sertraline","metadata":{"brand_names":["Zoloft"]}}]`,
	}
	serve := docsByKey(fixtures)
	ms.jsonGetFn = func(ctx context.Context, keys []string, path string) ([][]byte, error) {
		gotPath = path
		return serve(ctx, keys, path)
	}

	repo := NewJSON(ms, "healthdir:")
	recs, err := repo.ListByKind(context.Background(), domentity.Treatment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "$" {
		t.Errorf("path = %q, want $", gotPath)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID() != "a" || recs[1].ID() != "b" {
		t.Errorf("order = %s, %s; want key order", recs[0].ID(), recs[1].ID())
	}
	if recs[1].Name() != "Sertraline" {
		t.Errorf("name fallback = %q", recs[1].Name())
	}
	if got := recs[1].BrandNames(); len(got) != 1 || got[0] != "Zoloft" {
		t.Errorf("brand names = %v", got)
	}
	if recs[0].Kind() != domentity.Treatment {
		t.Errorf("kind = %s", recs[0].Kind())
	}
}

func TestJSONRepo_ListTreatments(t *testing.T) {
	var pattern string
	ms := &mockStore{scanFn: func(_ context.Context, p string) ([]string, error) {
		pattern = p
		return nil, nil
	}}

	recs, err := NewJSON(ms, "x:").ListTreatments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pattern != "x:entity:treatment:*" {
		t.Errorf("pattern = %s", pattern)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", recs)
	}
}

func TestJSONRepo_IDFromKey(t *testing.T) {
	ms := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"p:entity:resource:r-988"}, nil
		},
		jsonGetFn: docsByKey(map[string]string{
			"p:entity:resource:r-988": `[{"title":"988 Lifeline"}]`,
		}),
	}

	recs, err := NewJSON(ms, "p:").ListByKind(context.Background(), domentity.Resource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID() != "r-988" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestJSONRepo_DataMergedIntoContent(t *testing.T) {
	ms := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"p:entity:resource:r1"}, nil
		},
		jsonGetFn: docsByKey(map[string]string{
			"p:entity:resource:r1": `[{"id":"r1","content":{"hours":"24/7"},"data":{"hours":"old","phone":"988"}}]`,
		}),
	}

	recs, err := NewJSON(ms, "p:").ListByKind(context.Background(), domentity.Resource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := recs[0].Content()
	if content["hours"] != "24/7" {
		t.Errorf("content should win over data, got %v", content["hours"])
	}
	if content["phone"] != "988" {
		t.Errorf("data key missing: %v", content)
	}
	if got, want := recs[0].ContentJSON(), `{"hours":"24/7","phone":"988"}`; got != want {
		t.Errorf("ContentJSON() = %s, want %s", got, want)
	}
}

func TestJSONRepo_ContentKeepsStoredOrder(t *testing.T) {
	ms := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"p:entity:condition:gad"}, nil
		},
		jsonGetFn: docsByKey(map[string]string{
			"p:entity:condition:gad": `[{"id":"gad","content":{"overview":"Primary anxiety","a_notes":"secondary anxiety"}}]`,
		}),
	}

	recs, err := NewJSON(ms, "p:").ListByKind(context.Background(), domentity.Condition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := recs[0].ContentJSON(), `{"overview":"Primary anxiety","a_notes":"secondary anxiety"}`; got != want {
		t.Errorf("ContentJSON() = %s, want %s", got, want)
	}
}

func TestJSONRepo_SkipsVanishedAndEmpty(t *testing.T) {
	ms := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"p:entity:condition:a", "p:entity:condition:b", "p:entity:condition:c"}, nil
		},
		jsonGetFn: docsByKey(map[string]string{
			"p:entity:condition:b": `[]`,
			"p:entity:condition:c": `[{"id":"c","name":"Panic Disorder"}]`,
		}),
	}

	recs, err := NewJSON(ms, "p:").ListByKind(context.Background(), domentity.Condition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID() != "c" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestJSONRepo_Errors(t *testing.T) {
	storeErr := &db.Error{Op: db.OpScan, Err: errors.New("connection reset")}

	tests := []struct {
		name  string
		store *mockStore
		want  string
	}{
		{
			name: "scan",
			store: &mockStore{scanFn: func(context.Context, string) ([]string, error) {
				return nil, storeErr
			}},
			want: "scan condition",
		},
		{
			name: "json get",
			store: &mockStore{
				scanFn: func(context.Context, string) ([]string, error) { return []string{"k"}, nil },
				jsonGetFn: func(context.Context, []string, string) ([][]byte, error) {
					return nil, storeErr
				},
			},
			want: "get condition",
		},
		{
			name: "malformed document",
			store: &mockStore{
				scanFn:    func(context.Context, string) ([]string, error) { return []string{"k"}, nil },
				jsonGetFn: docsByKey(map[string]string{"k": `{not json`}),
			},
			want: "decode k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJSON(tt.store, "p:").ListByKind(context.Background(), domentity.Condition)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

// --- SQLRepo ---

func TestSQLRepo_ListByKind(t *testing.T) {
	ml := &mockLister{listFn: func(_ context.Context, kind string) ([]db.EntityRow, error) {
		if kind != "condition" {
			t.Errorf("kind = %s", kind)
		}
		return []db.EntityRow{
			{
				ID:       "c-gad",
				Name:     "Generalized Anxiety Disorder",
				Metadata: []byte(`{"category":"Anxiety"}`),
			},
			{ID: "c-mdd", Title: "Major Depressive Disorder", Content: []byte(`{"description":"Low mood"}`)},
		}, nil
	}}

	recs, err := NewSQL(ml).ListByKind(context.Background(), domentity.Condition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Category() != "Anxiety" {
		t.Errorf("category = %q", recs[0].Category())
	}
	if recs[1].Name() != "Major Depressive Disorder" || recs[1].Description() != "Low mood" {
		t.Errorf("fallbacks: name=%q desc=%q", recs[1].Name(), recs[1].Description())
	}
	if recs[1].Metadata() != nil || recs[1].MetadataJSON() != "" {
		t.Error("NULL metadata should stay absent")
	}
}

func TestSQLRepo_ListTreatments(t *testing.T) {
	var kinds []string
	ml := &mockLister{listFn: func(_ context.Context, kind string) ([]db.EntityRow, error) {
		kinds = append(kinds, kind)
		return nil, nil
	}}

	recs, err := NewSQL(ml).ListTreatments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kinds) != 1 || kinds[0] != "treatment" {
		t.Errorf("kinds = %v", kinds)
	}
	if recs == nil {
		t.Error("expected non-nil slice")
	}
}

func TestSQLRepo_Errors(t *testing.T) {
	selectErr := &db.Error{Op: db.OpSelect, Err: errors.New("relation does not exist")}
	ml := &mockLister{listFn: func(context.Context, string) ([]db.EntityRow, error) {
		return nil, selectErr
	}}
	_, err := NewSQL(ml).ListByKind(context.Background(), domentity.Resource)
	if !errors.Is(err, selectErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}

	ml.listFn = func(context.Context, string) ([]db.EntityRow, error) {
		return []db.EntityRow{{ID: "r1", Content: []byte(`[1,2]`)}}, nil
	}
	_, err = NewSQL(ml).ListByKind(context.Background(), domentity.Resource)
	if err == nil || !strings.Contains(err.Error(), "r1 content") {
		t.Errorf("expected content decode error, got %v", err)
	}
}
