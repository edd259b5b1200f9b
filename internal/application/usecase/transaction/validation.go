// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for notes.
	MaxNotesLength = 1000
)

// tagRegex restricts tags to lowercase letters and hyphens.
var tagRegex = regexp.MustCompile(`^[a-z-]+$`)

// validateDescription checks the trimmed description is non-empty and within
// bounds, returning the trimmed value.
func validateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" || len(trimmed) > MaxDescriptionLength {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDescription,
			fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
			domainerror.ErrInvalidDescription,
		)
	}
	return trimmed, nil
}

// validateNotes checks the optional notes length.
func validateNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDescription,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrInvalidDescription,
		)
	}
	return nil
}

// validateAmount checks the amount is strictly positive with at most two
// decimal places. The sign of a transaction is carried by its type, never by
// the amount.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !amount.Equal(amount.Round(2)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most 2 decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// normalizeTags case-folds, deduplicates and validates tags. At most
// MaxTransactionTags survive; each must match [a-z-]+ after folding.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		folded := strings.ToLower(strings.TrimSpace(tag))
		if folded == "" {
			continue
		}
		if !tagRegex.MatchString(folded) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTags,
				"tags may only contain lowercase letters and hyphens",
				domainerror.ErrInvalidTags,
			)
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		normalized = append(normalized, folded)
	}

	if len(normalized) > entity.MaxTransactionTags {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTags,
			fmt.Sprintf("at most %d tags are allowed", entity.MaxTransactionTags),
			domainerror.ErrInvalidTags,
		)
	}

	sort.Strings(normalized)
	return normalized, nil
}
