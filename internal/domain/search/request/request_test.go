package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/entity"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("Zoloft", "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query().Text() != "zoloft" {
		t.Errorf("Query().Text() = %q", r.Query().Text())
	}
	if r.Limit() != 0 || r.Offset() != 0 {
		t.Errorf("Limit/Offset = %d/%d, want 0/0", r.Limit(), r.Offset())
	}
	if len(r.Kinds()) != 3 {
		t.Errorf("Kinds() = %v, want all kinds", r.Kinds())
	}
}

func TestNew_KindFilter(t *testing.T) {
	r, err := New("anxiety", entity.Condition, 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := r.Kinds()
	if len(kinds) != 1 || kinds[0] != entity.Condition {
		t.Errorf("Kinds() = %v", kinds)
	}
	if r.Limit() != 10 || r.Offset() != 5 {
		t.Errorf("Limit/Offset = %d/%d", r.Limit(), r.Offset())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		kind   entity.Kind
		limit  int
		offset int
		want   error
	}{
		{"short query", "a", "", 0, 0, domain.ErrQueryTooShort},
		{"empty query", "", "", 0, 0, domain.ErrQueryTooShort},
		{"bad kind", "therapy", "provider", 0, 0, domain.ErrInvalidKind},
		{"negative limit", "therapy", "", -1, 0, domain.ErrInvalidPagination},
		{"negative offset", "therapy", "", 0, -3, domain.ErrInvalidPagination},
		{"too long", strings.Repeat("x", MaxQueryLength+1), "", 0, 0, domain.ErrQueryTooLong},
		{"blank over max length", strings.Repeat(" ", MaxQueryLength+100), "", 0, 0, domain.ErrQueryTooShort},
		{"short wins over bad kind", "a", "provider", -1, -1, domain.ErrQueryTooShort},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.raw, tc.kind, tc.limit, tc.offset)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNew_MaxLengthCountsTrimmedText(t *testing.T) {
	padded := "  " + strings.Repeat("x", MaxQueryLength) + "\t\n"
	if _, err := New(padded, "", 0, 0); err != nil {
		t.Errorf("padded query at max length: unexpected error %v", err)
	}
}
