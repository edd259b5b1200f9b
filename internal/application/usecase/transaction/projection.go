// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// summaryDeltaFor converts a transaction into its contribution to the
// monthly summary projection. sign is +1 for adding the record and -1 for
// subtracting it; an update is always subtract-old then add-new, so an
// amount change applies as the true delta between the two records.
func summaryDeltaFor(t *entity.Transaction, sign int64) adapter.SummaryDelta {
	cents := t.Amount.Mul(decimal.NewFromInt(100)).IntPart() * sign
	if t.Type == entity.TransactionTypeIncome {
		return adapter.SummaryDelta{IncomeCents: cents, IncomeCount: sign}
	}
	return adapter.SummaryDelta{ExpenseCents: cents, ExpenseCount: sign}
}

// applySummaryDelta pushes a delta into the projection cache. The projection
// is advisory: when the apply fails the month is invalidated so a stale value
// can never be served, and an invalidation failure is logged rather than
// failing the already-persisted write.
func applySummaryDelta(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID, yearMonth string, delta adapter.SummaryDelta) {
	if cache == nil || delta.IsZero() {
		return
	}
	if err := cache.Apply(ctx, userID, yearMonth, delta); err != nil {
		if invErr := cache.Invalidate(ctx, userID, yearMonth); invErr != nil {
			slog.Warn("failed to invalidate summary projection",
				"userID", userID,
				"yearMonth", yearMonth,
				"error", invErr,
			)
		}
	}
}
