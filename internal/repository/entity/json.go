// Package entity loads directory records from the configured store.
package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	domentity "github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// documentStore is the consumer interface for JSON document backends (ISP).
type documentStore interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// JSONRepo implements usecase/search.Repository over Redis or Valkey JSON documents.
type JSONRepo struct {
	store  documentStore
	prefix string
}

// NewJSON creates a repository reading keys under prefix.
func NewJSON(s documentStore, prefix string) *JSONRepo {
	return &JSONRepo{store: s, prefix: prefix}
}

// ListTreatments returns all treatment records.
func (r *JSONRepo) ListTreatments(ctx context.Context) ([]domentity.Record, error) {
	return r.ListByKind(ctx, domentity.Treatment)
}

// ListByKind returns all records of one kind in key order.
func (r *JSONRepo) ListByKind(ctx context.Context, kind domentity.Kind) ([]domentity.Record, error) {
	keyPrefix := r.kindPrefix(kind)
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}
	if len(keys) == 0 {
		return []domentity.Record{}, nil
	}
	// SCAN order is unspecified
	sort.Strings(keys)

	docs, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}

	records := make([]domentity.Record, 0, len(keys))
	for i, raw := range docs {
		if raw == nil {
			continue
		}
		doc, ok, err := decodeDoc(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		if !ok {
			continue
		}
		if doc.ID == "" {
			doc.ID = strings.TrimPrefix(keys[i], keyPrefix)
		}
		rec, err := doc.toRecord(kind)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *JSONRepo) kindPrefix(kind domentity.Kind) string {
	return r.prefix + "entity:" + string(kind) + ":"
}

// decodeDoc unwraps the JSONPath "$" result array. ok is false for an empty match.
func decodeDoc(raw []byte) (entityDoc, bool, error) {
	var matches []entityDoc
	if err := json.Unmarshal(raw, &matches); err != nil {
		return entityDoc{}, false, err
	}
	if len(matches) == 0 {
		return entityDoc{}, false, nil
	}
	return matches[0], true, nil
}
