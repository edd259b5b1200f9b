// Package report contains read-side aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// MonthlySummaryInput represents the input for a monthly summary.
type MonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// MonthlySummaryOutput represents the output of a monthly summary.
type MonthlySummaryOutput struct {
	YearMonth string
	Summary   entity.Summary
}

// MonthlySummaryUseCase computes income/expense totals, counts, averages and
// the net amount over all non-deleted transactions of one calendar month.
// It always reads the authoritative store, never the projection cache.
type MonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	yearMonth, err := yearMonthKey(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	totals, err := uc.transactionRepo.GetMonthlyTotals(ctx, input.UserID, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}

	return &MonthlySummaryOutput{
		YearMonth: yearMonth,
		Summary:   entity.NewSummary(totals.IncomeTotal, totals.IncomeCount, totals.ExpenseTotal, totals.ExpenseCount),
	}, nil
}

// yearMonthKey validates the month and builds the "YYYY-MM" grouping key.
func yearMonthKey(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}
