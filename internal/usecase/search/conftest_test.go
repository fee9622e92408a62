package search

import (
	"context"
	"sync"
	"time"

	"github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// --- Mocks ---

type mockRepo struct {
	records map[entity.Kind][]entity.Record
	errs    map[entity.Kind]error

	mu    sync.Mutex
	calls []entity.Kind
}

func (m *mockRepo) ListTreatments(ctx context.Context) ([]entity.Record, error) {
	return m.list(ctx, entity.Treatment)
}

func (m *mockRepo) ListByKind(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	if kind == entity.Treatment {
		panic("treatments must be loaded through ListTreatments")
	}
	return m.list(ctx, kind)
}

func (m *mockRepo) list(_ context.Context, kind entity.Kind) ([]entity.Record, error) {
	m.mu.Lock()
	m.calls = append(m.calls, kind)
	m.mu.Unlock()
	if err := m.errs[kind]; err != nil {
		return nil, err
	}
	return m.records[kind], nil
}

func (m *mockRepo) called(kind entity.Kind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range m.calls {
		if k == kind {
			return true
		}
	}
	return false
}

type mockRecorder struct {
	calls   int
	corpus  int
	matched int
}

func (m *mockRecorder) ObserveSearch(_ time.Duration, corpus, matched int) {
	m.calls++
	m.corpus = corpus
	m.matched = matched
}

// --- Fixtures ---

func treatment(id, name string, f entity.Fields) entity.Record {
	f.ID = id
	f.Name = name
	return entity.Reconstruct(entity.Treatment, f)
}

func condition(id, name string, f entity.Fields) entity.Record {
	f.ID = id
	f.Name = name
	return entity.Reconstruct(entity.Condition, f)
}

func resource(id, name string, f entity.Fields) entity.Record {
	f.ID = id
	f.Name = name
	return entity.Reconstruct(entity.Resource, f)
}

func directoryCorpus() *mockRepo {
	return &mockRepo{records: map[entity.Kind][]entity.Record{
		entity.Treatment: {
			treatment("t-cbt", "Cognitive Behavioral Therapy", entity.Fields{
				Slug:        "cbt",
				Description: "A structured, goal-oriented psychotherapy for anxiety and depression.",
				Metadata:    map[string]any{"category": "Psychotherapy"},
			}),
			treatment("t-sertraline", "Sertraline (Zoloft)", entity.Fields{
				Slug:        "sertraline",
				Description: "A selective serotonin reuptake inhibitor.",
				Metadata: map[string]any{
					"category":    "SSRI",
					"brand_names": []any{"Zoloft"},
				},
			}),
		},
		entity.Condition: {
			condition("c-gad", "Generalized Anxiety Disorder", entity.Fields{
				Slug:        "gad",
				Description: "Persistent and excessive worry about everyday things.",
				Category:    "Anxiety Disorders",
			}),
			condition("c-mdd", "Major Depressive Disorder", entity.Fields{
				Slug:        "mdd",
				Description: "Low mood; some patients previously prescribed zoloft report relapse.",
			}),
		},
		entity.Resource: {
			resource("r-988", "988 Suicide & Crisis Lifeline", entity.Fields{
				Slug: "988-lifeline",
				Content: map[string]any{
					"phone": "988",
					"sections": []any{
						map[string]any{"heading": "When to call", "body": "Call for panic, anxiety, or thoughts of self-harm."},
					},
				},
			}),
		},
	}}
}
