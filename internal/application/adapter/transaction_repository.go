// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// TransactionSortField is a sortable transaction field.
type TransactionSortField string

const (
	SortFieldDate   TransactionSortField = "date"
	SortFieldAmount TransactionSortField = "amount"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// TransactionFilter defines filter options for listing and aggregating
// transactions. Filters are intersective; nil/empty fields are no-ops.
type TransactionFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Tags       []string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionPage defines pagination options.
type TransactionPage struct {
	Page int
	Size int
}

// TransactionSort defines ordering options.
type TransactionSort struct {
	Field TransactionSortField
	Order SortOrder
}

// TransactionListResult represents one page of a filtered listing.
type TransactionListResult struct {
	Transactions []*entity.TransactionWithCategory
	Total        int64
}

// TransactionTotals represents per-type aggregates over a filter scope.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	IncomeCount  int64
	ExpenseTotal decimal.Decimal
	ExpenseCount int64
}

// TransactionRepository defines the interface for transaction persistence
// operations. Lookups are user-scoped and exclude soft-deleted records
// unless stated otherwise.
type TransactionRepository interface {
	// CreateWithDailyLimit inserts a new transaction after counting the
	// user's non-deleted transactions on the same calendar date, both inside
	// one database transaction. Returns ErrDailyLimitReached when the count
	// is already at limit.
	CreateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error

	// UpdateWithDailyLimit persists changes to a transaction, re-checking
	// the daily count for the transaction's date with the record itself
	// excluded, inside one database transaction.
	UpdateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error

	// FindByIDAndUser retrieves a non-deleted transaction by id for the user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByIDAndUserIncludingDeleted retrieves a transaction regardless of
	// its soft-delete state.
	FindByIDAndUserIncludingDeleted(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves one page of transactions matching the filter,
	// with their categories, plus the total match count.
	FindByFilter(ctx context.Context, filter TransactionFilter, page TransactionPage, sort TransactionSort) (*TransactionListResult, error)

	// GetTotals aggregates per-type totals and counts over the filter scope.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// GetMonthlyTotals aggregates per-type totals and counts for one
	// "YYYY-MM" month.
	GetMonthlyTotals(ctx context.Context, userID uuid.UUID, yearMonth string) (*TransactionTotals, error)

	// GetCategoryBreakdown aggregates totals grouped by (category, type),
	// ordered by total descending, within an optional date range and
	// optional type filter.
	GetCategoryBreakdown(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, transactionType *entity.TransactionType) ([]entity.CategoryBreakdownEntry, error)

	// SoftDelete marks a transaction as deleted.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}
