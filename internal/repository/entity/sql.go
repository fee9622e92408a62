package entity

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/healthdir/internal/db"
	domentity "github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// entityLister is the consumer interface for relational backends (ISP).
type entityLister interface {
	ListEntities(ctx context.Context, kind string) ([]db.EntityRow, error)
}

// SQLRepo implements usecase/search.Repository over the entities table.
type SQLRepo struct {
	store entityLister
}

// NewSQL creates a relational repository.
func NewSQL(s entityLister) *SQLRepo {
	return &SQLRepo{store: s}
}

// ListTreatments returns all treatment records.
func (r *SQLRepo) ListTreatments(ctx context.Context) ([]domentity.Record, error) {
	return r.ListByKind(ctx, domentity.Treatment)
}

// ListByKind returns all records of one kind.
func (r *SQLRepo) ListByKind(ctx context.Context, kind domentity.Kind) ([]domentity.Record, error) {
	rows, err := r.store.ListEntities(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	records := make([]domentity.Record, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		metadata, err := decodeObject(row.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%s %s metadata: %w", kind, row.ID, err)
		}
		content, blob, err := contentSlot(row.Content, nil)
		if err != nil {
			return nil, fmt.Errorf("%s %s content: %w", kind, row.ID, err)
		}
		records = append(records, domentity.Reconstruct(kind, domentity.Fields{
			ID:          row.ID,
			Name:        row.Name,
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			Slug:        row.Slug,
			Metadata:    metadata,
			Content:     content,
			ContentJSON: blob,
		}))
	}
	return records, nil
}
