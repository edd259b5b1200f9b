// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// allowedPageSizes are the supported page sizes for listing.
var allowedPageSizes = map[int]bool{10: true, 20: true, 50: true}

// DefaultPageSize is used when the caller does not specify a page size.
const DefaultPageSize = 20

// ListTransactionsInput represents the input for listing transactions.
// All filters are optional and intersective.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Tags       []string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Size       int
	SortField  adapter.TransactionSortField
	SortOrder  adapter.SortOrder
}

// Pagination describes the page window of a listing result.
type Pagination struct {
	Page       int
	Size       int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ListTransactionsOutput represents one page of transactions plus the
// summary over the full filter scope (not just the page).
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	Summary      entity.Summary
	Pagination   Pagination
}

// ListTransactionsUseCase handles filtered, paginated, sorted listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Page < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPage,
			"page must be 1 or greater",
			domainerror.ErrInvalidPage,
		)
	}
	if input.Size == 0 {
		input.Size = DefaultPageSize
	}
	if !allowedPageSizes[input.Size] {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPageSize,
			"page size must be 10, 20 or 50",
			domainerror.ErrInvalidPageSize,
		)
	}

	sortField := input.SortField
	if sortField == "" {
		sortField = adapter.SortFieldDate
	}
	if sortField != adapter.SortFieldDate && sortField != adapter.SortFieldAmount {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortField,
			"sort field must be 'date' or 'amount'",
			domainerror.ErrInvalidSortField,
		)
	}
	sortOrder := input.SortOrder
	if sortOrder == "" {
		sortOrder = adapter.SortOrderDesc
	}
	if sortOrder != adapter.SortOrderAsc && sortOrder != adapter.SortOrderDesc {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortOrder,
			"sort order must be 'asc' or 'desc'",
			domainerror.ErrInvalidSortOrder,
		)
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}
	if input.MinAmount != nil && input.MaxAmount != nil && input.MaxAmount.LessThan(*input.MinAmount) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidAmountRange,
			"max amount must not be below min amount",
			domainerror.ErrInvalidAmountRange,
		)
	}

	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		MinAmount:  input.MinAmount,
		MaxAmount:  input.MaxAmount,
		Tags:       tags,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	result, err := uc.transactionRepo.FindByFilter(
		ctx,
		filter,
		adapter.TransactionPage{Page: input.Page, Size: input.Size},
		adapter.TransactionSort{Field: sortField, Order: sortOrder},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// The summary reflects the same filter scope as the listing.
	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: result.Transactions,
		Summary:      entity.NewSummary(totals.IncomeTotal, totals.IncomeCount, totals.ExpenseTotal, totals.ExpenseCount),
		Pagination:   NewPagination(input.Page, input.Size, result.Total),
	}, nil
}

// NewPagination derives the page window flags from page, size and total.
func NewPagination(page, size int, total int64) Pagination {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(size) < total,
		HasPrev:    page > 1,
	}
}
