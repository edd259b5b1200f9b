// Package report contains read-side aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// CategoryBreakdownInput represents the input for a category breakdown.
// The date range and type filter are optional.
type CategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// CategoryBreakdownOutput represents the output of a category breakdown.
type CategoryBreakdownOutput struct {
	Entries []entity.CategoryBreakdownEntry
}

// CategoryBreakdownUseCase groups non-deleted transactions by
// (category, type) and returns totals sorted by total descending.
type CategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, input CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Type != nil && !entity.IsValidTransactionType(*input.Type) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidReportType,
		)
	}

	entries, err := uc.transactionRepo.GetCategoryBreakdown(ctx, input.UserID, input.StartDate, input.EndDate, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	return &CategoryBreakdownOutput{Entries: entries}, nil
}
