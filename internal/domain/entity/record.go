package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Record is a searchable directory entry (immutable value object).
// Metadata and content are open JSON subtrees kept as decoded maps.
type Record struct {
	kind        Kind
	id          string
	name        string
	title       string
	description string
	category    string
	slug        string
	metadata    map[string]any
	content     map[string]any
	contentJSON string
}

// Fields carries the raw columns of a stored record.
type Fields struct {
	ID          string
	Name        string
	Title       string
	Description string
	Category    string
	Slug        string
	Metadata    map[string]any
	Content     map[string]any
	// ContentJSON is Content serialized in stored key order. When empty,
	// Content is serialized with sorted keys.
	ContentJSON string
}

// Reconstruct creates a Record from storage without validation.
func Reconstruct(kind Kind, f Fields) Record {
	return Record{
		kind:        kind,
		id:          f.ID,
		name:        f.Name,
		title:       f.Title,
		description: f.Description,
		category:    f.Category,
		slug:        f.Slug,
		metadata:    f.Metadata,
		content:     f.Content,
		contentJSON: f.ContentJSON,
	}
}

// Kind returns the source collection of the record.
func (r *Record) Kind() Kind { return r.kind }

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// Slug returns the URL-safe identifier.
func (r *Record) Slug() string { return r.slug }

// Metadata returns the open metadata map.
func (r *Record) Metadata() map[string]any { return r.metadata }

// Content returns the open content map.
func (r *Record) Content() map[string]any { return r.content }

// Name returns the display title, falling back to the title field.
func (r *Record) Name() string {
	if r.name != "" {
		return r.name
	}
	return r.title
}

// Description returns the top-level description or content.description.
func (r *Record) Description() string {
	if r.description != "" {
		return r.description
	}
	return stringAt(r.content, "description")
}

// Category returns the top-level category or metadata.category.
func (r *Record) Category() string {
	if r.category != "" {
		return r.category
	}
	return stringAt(r.metadata, "category")
}

// BrandNames returns metadata.brand_names. Non-string entries are skipped.
func (r *Record) BrandNames() []string {
	raw, ok := r.metadata["brand_names"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// MetadataJSON serializes the metadata map. Empty string when absent.
func (r *Record) MetadataJSON() string { return serialize(r.metadata) }

// ContentJSON returns the serialized content, in stored key order when the
// source provided it. Empty string when absent.
func (r *Record) ContentJSON() string {
	if r.contentJSON != "" {
		return r.contentJSON
	}
	return serialize(r.content)
}

func stringAt(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// serialize encodes v as compact JSON without HTML escaping.
// encoding/json sorts map keys, so the output is deterministic.
func serialize(v map[string]any) string {
	if v == nil {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
