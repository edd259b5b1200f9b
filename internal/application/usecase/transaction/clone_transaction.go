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

// CloneTransactionInput represents the input for cloning a transaction.
// Overrides are optional; the clone's date defaults to now.
type CloneTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Description   *string
	Notes         *string
	Date          *time.Time
	Tags          []string
	TagsSet       bool
}

// CloneTransactionOutput represents the output of cloning a transaction.
type CloneTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CloneTransactionUseCase produces a new first-class transaction copied from
// an existing one. The clone is routed through the regular create path, so
// every create-time invariant (category resolution, type coupling, amount
// checks, the daily cap) applies to it again.
type CloneTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	createUseCase   *CreateTransactionUseCase
	now             func() time.Time
}

// NewCloneTransactionUseCase creates a new CloneTransactionUseCase instance.
func NewCloneTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	createUseCase *CreateTransactionUseCase,
) *CloneTransactionUseCase {
	return &CloneTransactionUseCase{
		transactionRepo: transactionRepo,
		createUseCase:   createUseCase,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the clone.
func (uc *CloneTransactionUseCase) Execute(ctx context.Context, input CloneTransactionInput) (*CloneTransactionOutput, error) {
	source, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
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

	createInput := CreateTransactionInput{
		UserID:      input.UserID,
		CategoryID:  source.CategoryID,
		Amount:      source.Amount,
		Description: source.Description,
		Notes:       source.Notes,
		Date:        uc.now(),
		Tags:        source.Tags,
	}

	if input.CategoryID != nil {
		createInput.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		createInput.Amount = *input.Amount
	}
	if input.Description != nil {
		createInput.Description = *input.Description
	}
	if input.Notes != nil {
		createInput.Notes = *input.Notes
	}
	if input.Date != nil {
		createInput.Date = *input.Date
	}
	if input.TagsSet {
		createInput.Tags = input.Tags
	}

	output, err := uc.createUseCase.Execute(ctx, createInput)
	if err != nil {
		return nil, err
	}

	return &CloneTransactionOutput{
		Transaction: output.Transaction,
		Category:    output.Category,
	}, nil
}
