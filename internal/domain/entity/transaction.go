// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// MaxTransactionTags is the maximum number of tags per transaction.
const MaxTransactionTags = 3

// DailyTransactionLimit is the maximum number of non-deleted transactions
// a user may have on a single calendar date.
const DailyTransactionLimit = 100

// Transaction represents a single income or expense entry in a user's ledger.
// Amount is always strictly positive; the direction is carried by Type, which
// is a denormalized copy of the referenced category's type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	Notes       string
	Tags        []string
	Date        time.Time
	Year        int
	Month       int
	YearMonth   string // "YYYY-MM", derived from Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity with the temporal fields
// derived from date.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	description, notes string,
	tags []string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	t := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		Notes:       notes,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.SetDate(date)
	return t
}

// SetDate updates the transaction date and recomputes the derived
// year/month/yearMonth fields.
func (t *Transaction) SetDate(date time.Time) {
	t.Date = date
	t.Year = date.Year()
	t.Month = int(date.Month())
	t.YearMonth = YearMonthOf(date)
}

// YearMonthOf returns the "YYYY-MM" grouping key for a date.
func YearMonthOf(date time.Time) string {
	return fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
}

// IsValidTransactionType reports whether the given type is expense or income.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeExpense || transactionType == TransactionTypeIncome
}

// TransactionWithCategory represents a transaction with its owning category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
