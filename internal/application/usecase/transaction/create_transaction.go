// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// Type is optional; when supplied it must match the category's type and is
// rejected on conflict, never silently overridden.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        *entity.TransactionType
	Description string
	Notes       string
	Date        time.Time
	Tags        []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}

	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}

	// Resolve the category: deleted or cross-user references surface
	// identically as not found.
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	// The type is authoritative from the category. A conflicting
	// caller-supplied type is an error, not an override.
	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		if string(*input.Type) != string(category.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTypeMismatch,
				"transaction type must match the category type",
				domainerror.ErrTransactionTypeMismatch,
			)
		}
	}
	transactionType := entity.TransactionType(category.Type)

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		category.ID,
		input.Amount,
		transactionType,
		description,
		input.Notes,
		tags,
		input.Date,
	)

	// The daily count check and the insert run inside one database
	// transaction so concurrent creates cannot slip past the cap.
	if err := uc.transactionRepo.CreateWithDailyLimit(ctx, transaction, entity.DailyTransactionLimit); err != nil {
		if errors.Is(err, domainerror.ErrDailyLimitReached) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDailyLimitReached,
				fmt.Sprintf("Daily transaction limit of %d has been reached", entity.DailyTransactionLimit),
				domainerror.ErrDailyLimitReached,
			)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	applySummaryDelta(ctx, uc.summaryCache, transaction.UserID, transaction.YearMonth, summaryDeltaFor(transaction, 1))

	return &CreateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}
