// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/centsible/backend/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"positive with two decimals", decimal.NewFromFloat(10.50), false},
		{"whole number", decimal.NewFromInt(100), false},
		{"smallest valid amount", decimal.NewFromFloat(0.01), false},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromFloat(-5.00), true},
		{"three decimal places", decimal.NewFromFloat(10.505), true},
		{"trailing zero beyond two places", decimal.RequireFromString("10.500"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAmount(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAmount(%s) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
				t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := validateDescription("  Lunch at work  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Lunch at work" {
			t.Errorf("expected trimmed description, got %q", got)
		}
	})

	t.Run("rejects blank description", func(t *testing.T) {
		if _, err := validateDescription("   "); !errors.Is(err, domainerror.ErrInvalidDescription) {
			t.Errorf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("rejects description over the limit", func(t *testing.T) {
		long := strings.Repeat("a", MaxDescriptionLength+1)
		if _, err := validateDescription(long); !errors.Is(err, domainerror.ErrInvalidDescription) {
			t.Errorf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("accepts description at the limit", func(t *testing.T) {
		exact := strings.Repeat("a", MaxDescriptionLength)
		if _, err := validateDescription(exact); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestValidateNotes(t *testing.T) {
	if err := validateNotes(strings.Repeat("n", MaxNotesLength)); err != nil {
		t.Errorf("unexpected error for notes at the limit: %v", err)
	}
	if err := validateNotes(strings.Repeat("n", MaxNotesLength+1)); err == nil {
		t.Error("expected error for notes over the limit")
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		want    []string
		wantErr bool
	}{
		{"nil input", nil, nil, false},
		{"empty slice", []string{}, nil, false},
		{"folds case and trims", []string{" Food ", "TRAVEL"}, []string{"food", "travel"}, false},
		{"deduplicates after folding", []string{"food", "Food", "FOOD"}, []string{"food"}, false},
		{"sorts the result", []string{"travel", "food", "bills"}, []string{"bills", "food", "travel"}, false},
		{"skips empty entries", []string{"", "  ", "food"}, []string{"food"}, false},
		{"allows hyphens", []string{"fast-food"}, []string{"fast-food"}, false},
		{"rejects digits", []string{"food1"}, nil, true},
		{"rejects spaces inside", []string{"fast food"}, nil, true},
		{"rejects non-ascii letters", []string{"café"}, nil, true},
		{"rejects more than three", []string{"a", "b", "c", "d"}, nil, true},
		{"duplicates do not count toward the limit", []string{"a", "a", "b", "c"}, []string{"a", "b", "c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeTags(tt.tags)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeTags(%v) error = %v, wantErr %v", tt.tags, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, domainerror.ErrInvalidTags) {
					t.Errorf("expected ErrInvalidTags, got %v", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeTags(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, size     int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"first of several pages", 1, 20, 45, 3, true, false},
		{"middle page", 2, 20, 45, 3, true, true},
		{"last partial page", 3, 20, 45, 3, false, true},
		{"exact page boundary", 2, 10, 20, 2, false, true},
		{"empty result still has one page", 1, 10, 0, 1, false, false},
		{"single page", 1, 50, 12, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.size, tt.total)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tt.wantHasNext)
			}
			if got.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tt.wantHasPrev)
			}
			if got.Total != tt.total || got.Page != tt.page || got.Size != tt.size {
				t.Error("pagination should echo page, size and total")
			}
		})
	}
}
