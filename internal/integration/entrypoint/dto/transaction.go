// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/usecase/transaction"
	"github.com/centsible/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Type is optional; when present it must agree with the category's type.
type CreateTransactionRequest struct {
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        *string         `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Notes       string          `json:"notes,omitempty"`
	Date        time.Time       `json:"date" binding:"required"`
	Tags        []string        `json:"tags,omitempty"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. A present "tags" key replaces the tag set; an absent
// one leaves it alone.
type UpdateTransactionRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Notes       *string          `json:"notes,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
}

// CloneTransactionRequest represents the request body for cloning a
// transaction. All fields are optional overrides.
type CloneTransactionRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Notes       *string          `json:"notes,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Notes       string            `json:"notes,omitempty"`
	Tags        []string          `json:"tags"`
	Date        time.Time         `json:"date"`
	YearMonth   string            `json:"year_month"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SummaryResponse represents aggregate totals over a scope.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	IncomeCount   int64           `json:"income_count"`
	ExpenseCount  int64           `json:"expense_count"`
	AvgIncome     decimal.Decimal `json:"avg_income"`
	AvgExpense    decimal.Decimal `json:"avg_expense"`
}

// PaginationResponse represents the page window of a listing.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// TransactionListResponse represents one page of transactions plus the
// summary over the full filter scope.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		ID:          t.ID.String(),
		CategoryID:  t.CategoryID.String(),
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Notes:       t.Notes,
		Tags:        tags,
		Date:        t.Date,
		YearMonth:   t.YearMonth,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionWithCategoryResponse converts a transaction with its resolved
// category. The category is omitted when it has been deleted out from under
// the transaction.
func ToTransactionWithCategoryResponse(tc *entity.TransactionWithCategory) TransactionResponse {
	response := ToTransactionResponse(tc.Transaction)
	if tc.Category != nil {
		cat := ToCategoryResponse(tc.Category)
		response.Category = &cat
	}
	return response
}

// ToSummaryResponse converts a domain Summary to a SummaryResponse DTO.
func ToSummaryResponse(s entity.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   s.Income.Total,
		TotalExpenses: s.Expenses.Total,
		NetAmount:     s.NetAmount,
		IncomeCount:   s.Income.Count,
		ExpenseCount:  s.Expenses.Count,
		AvgIncome:     s.Income.Average,
		AvgExpense:    s.Expenses.Average,
	}
}

// ToTransactionListResponse converts a listing output to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, tc := range output.Transactions {
		transactions[i] = ToTransactionWithCategoryResponse(tc)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Summary:      ToSummaryResponse(output.Summary),
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Size:       output.Pagination.Size,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
			HasNext:    output.Pagination.HasNext,
			HasPrev:    output.Pagination.HasPrev,
		},
	}
}
