// Package report contains read-side aggregation use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
)

// CachedSummaryInput represents the input for the fast summary path.
type CachedSummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// CachedSummaryOutput represents the projection read for one month.
type CachedSummaryOutput struct {
	YearMonth     string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	IncomeCount   int64
	ExpenseCount  int64
	NetAmount     decimal.Decimal
}

// CachedSummaryUseCase serves the monthly summary from the incrementally
// maintained projection. On a cache miss the month is recomputed from the
// authoritative store and seeded back, so subsequent mutations can keep it
// current through deltas.
type CachedSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewCachedSummaryUseCase creates a new CachedSummaryUseCase instance.
func NewCachedSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *CachedSummaryUseCase {
	return &CachedSummaryUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute reads the projection, recomputing and seeding on a miss.
func (uc *CachedSummaryUseCase) Execute(ctx context.Context, input CachedSummaryInput) (*CachedSummaryOutput, error) {
	yearMonth, err := yearMonthKey(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	cached, found, err := uc.summaryCache.Get(ctx, input.UserID, yearMonth)
	if err != nil {
		// A cache outage degrades to the authoritative path.
		slog.Warn("summary projection read failed, falling back to store",
			"userID", input.UserID,
			"yearMonth", yearMonth,
			"error", err,
		)
		found = false
	}
	if found {
		return &CachedSummaryOutput{
			YearMonth:     yearMonth,
			TotalIncome:   cached.TotalIncome,
			TotalExpenses: cached.TotalExpenses,
			IncomeCount:   cached.IncomeCount,
			ExpenseCount:  cached.ExpenseCount,
			NetAmount:     cached.NetAmount,
		}, nil
	}

	totals, err := uc.transactionRepo.GetMonthlyTotals(ctx, input.UserID, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute monthly summary: %w", err)
	}

	if err := uc.summaryCache.Seed(ctx, input.UserID, yearMonth, *totals); err != nil {
		slog.Warn("failed to seed summary projection",
			"userID", input.UserID,
			"yearMonth", yearMonth,
			"error", err,
		)
	}

	return &CachedSummaryOutput{
		YearMonth:     yearMonth,
		TotalIncome:   totals.IncomeTotal,
		TotalExpenses: totals.ExpenseTotal,
		IncomeCount:   totals.IncomeCount,
		ExpenseCount:  totals.ExpenseCount,
		NetAmount:     totals.IncomeTotal.Sub(totals.ExpenseTotal),
	}, nil
}
