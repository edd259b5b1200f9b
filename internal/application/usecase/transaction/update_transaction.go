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

// UpdateTransactionInput represents the input for a partial transaction
// update. When CategoryID changes the type is re-derived from the new
// category; an explicit Type conflicting with the resolved category is
// rejected.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Description   *string
	Notes         *string
	Date          *time.Time
	Tags          []string
	TagsSet       bool // distinguishes "clear tags" from "leave tags alone"
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	// Snapshot for the projection delta: subtract-old, add-new.
	before := *transaction

	// Resolve the category the record will point at after the patch.
	categoryID := transaction.CategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, categoryID, input.UserID)
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
	transaction.CategoryID = category.ID
	transaction.Type = entity.TransactionType(category.Type)

	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		transaction.Description = description
	}

	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		transaction.Notes = *input.Notes
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *input.Amount
	}

	if input.TagsSet {
		tags, err := normalizeTags(input.Tags)
		if err != nil {
			return nil, err
		}
		transaction.Tags = tags
	}

	if input.Date != nil {
		transaction.SetDate(*input.Date)
	}

	transaction.UpdatedAt = time.Now().UTC()

	// The daily count for the (possibly new) date is re-checked with this
	// record excluded, inside the same database transaction as the write.
	if err := uc.transactionRepo.UpdateWithDailyLimit(ctx, transaction, entity.DailyTransactionLimit); err != nil {
		if errors.Is(err, domainerror.ErrDailyLimitReached) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDailyLimitReached,
				fmt.Sprintf("Daily transaction limit of %d has been reached", entity.DailyTransactionLimit),
				domainerror.ErrDailyLimitReached,
			)
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.applyProjection(ctx, &before, transaction)

	return &UpdateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}

// applyProjection applies subtract-old/add-new to the affected month(s).
// When the update moved the record across months, each month gets its own
// half of the delta.
func (uc *UpdateTransactionUseCase) applyProjection(ctx context.Context, before, after *entity.Transaction) {
	if before.YearMonth == after.YearMonth {
		delta := summaryDeltaFor(before, -1)
		delta.Add(summaryDeltaFor(after, 1))
		applySummaryDelta(ctx, uc.summaryCache, after.UserID, after.YearMonth, delta)
		return
	}
	applySummaryDelta(ctx, uc.summaryCache, before.UserID, before.YearMonth, summaryDeltaFor(before, -1))
	applySummaryDelta(ctx, uc.summaryCache, after.UserID, after.YearMonth, summaryDeltaFor(after, 1))
}
