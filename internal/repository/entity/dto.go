package entity

import (
	"encoding/json"
	"fmt"

	domentity "github.com/kailas-cloud/healthdir/internal/domain/entity"
)

// entityDoc is the stored JSON shape of a directory record.
// Resources written by the importer keep their nested map under "data".
type entityDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Slug        string          `json:"slug"`
	Metadata    map[string]any  `json:"metadata"`
	Content     json.RawMessage `json:"content"`
	Data        json.RawMessage `json:"data"`
}

func (d *entityDoc) toRecord(kind domentity.Kind) (domentity.Record, error) {
	content, blob, err := contentSlot(d.Content, d.Data)
	if err != nil {
		return domentity.Record{}, fmt.Errorf("content: %w", err)
	}
	return domentity.Reconstruct(kind, domentity.Fields{
		ID:          d.ID,
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Slug:        d.Slug,
		Metadata:    d.Metadata,
		Content:     content,
		ContentJSON: blob,
	}), nil
}

// contentSlot folds data into content and returns the merged map together
// with its serialization in stored key order. Keys already in content win.
func contentSlot(content, data []byte) (map[string]any, string, error) {
	contentMap, err := decodeObject(content)
	if err != nil {
		return nil, "", err
	}
	dataMap, err := decodeObject(data)
	if err != nil {
		return nil, "", fmt.Errorf("data: %w", err)
	}
	merged := mergeContent(contentMap, dataMap)
	if merged == nil {
		return nil, "", nil
	}

	members, err := objectMembers(content)
	if err != nil {
		return nil, "", err
	}
	extra, err := objectMembers(data)
	if err != nil {
		return nil, "", fmt.Errorf("data: %w", err)
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		seen[m.key] = struct{}{}
	}
	for _, m := range extra {
		if _, dup := seen[m.key]; !dup {
			members = append(members, m)
		}
	}
	blob, err := encodeMembers(members)
	if err != nil {
		return nil, "", err
	}
	return merged, blob, nil
}

// mergeContent folds data into content. Keys already in content win.
func mergeContent(content, data map[string]any) map[string]any {
	if len(data) == 0 {
		return content
	}
	if len(content) == 0 {
		return data
	}
	out := make(map[string]any, len(content)+len(data))
	for k, v := range data {
		out[k] = v
	}
	for k, v := range content {
		out[k] = v
	}
	return out
}

// decodeObject decodes a nullable JSON object column.
func decodeObject(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return m, nil
}
