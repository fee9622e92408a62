package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// Repository loads the search corpus.
type Repository interface {
	ListTreatments(ctx context.Context) ([]entity.Record, error)
	ListByKind(ctx context.Context, kind entity.Kind) ([]entity.Record, error)
}

// Recorder observes completed searches (metrics).
type Recorder interface {
	ObserveSearch(duration time.Duration, corpus, matched int)
}
