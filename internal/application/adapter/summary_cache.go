// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryDelta is the incremental change a single ledger mutation applies to
// a month's cached summary. Amounts are integer cents so cache increments
// stay exact; a delete is expressed as negative values and an update as the
// combination of subtracting the old record and adding the new one.
type SummaryDelta struct {
	IncomeCents  int64
	IncomeCount  int64
	ExpenseCents int64
	ExpenseCount int64
}

// Add accumulates another delta into this one.
func (d *SummaryDelta) Add(other SummaryDelta) {
	d.IncomeCents += other.IncomeCents
	d.IncomeCount += other.IncomeCount
	d.ExpenseCents += other.ExpenseCents
	d.ExpenseCount += other.ExpenseCount
}

// IsZero reports whether the delta changes nothing.
func (d SummaryDelta) IsZero() bool {
	return d.IncomeCents == 0 && d.IncomeCount == 0 && d.ExpenseCents == 0 && d.ExpenseCount == 0
}

// CachedSummary is the denormalized monthly summary read back from the cache.
type CachedSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	IncomeCount   int64
	ExpenseCount  int64
	NetAmount     decimal.Decimal
}

// SummaryCache maintains the incrementally-updated monthly summary
// projection. The projection must equal a full recomputation of the same
// (user, month) scope once in-flight updates settle: Apply must be a no-op
// when the month has not been seeded, so the cache never holds a partial
// state that increments alone would produce.
type SummaryCache interface {
	// Apply atomically applies the delta to the month's projection if it is
	// present in the cache, and does nothing otherwise.
	Apply(ctx context.Context, userID uuid.UUID, yearMonth string, delta SummaryDelta) error

	// Get returns the month's projection and whether it was present.
	Get(ctx context.Context, userID uuid.UUID, yearMonth string) (*CachedSummary, bool, error)

	// Seed stores a freshly recomputed projection for the month.
	Seed(ctx context.Context, userID uuid.UUID, yearMonth string, totals TransactionTotals) error

	// Invalidate drops the month's projection.
	Invalidate(ctx context.Context, userID uuid.UUID, yearMonth string) error
}
