// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

func TestCloneTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expenseCategory := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense, nil, entity.DefaultCategoryColor, entity.DefaultCategoryIcon, false, nil)
	sourceDate := time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	source := entity.NewTransaction(userID, expenseCategory.ID, decimal.NewFromFloat(15.00), entity.TransactionTypeExpense, "Bus ticket", "monthly pass", []string{"commute"}, sourceDate)

	newUseCase := func(createErr error) (*CloneTransactionUseCase, *[]*entity.Transaction) {
		var created []*entity.Transaction
		repo := &stubTransactionRepo{
			findFn: func(_ context.Context, id, user uuid.UUID) (*entity.Transaction, error) {
				if id == source.ID && user == userID {
					copied := *source
					return &copied, nil
				}
				return nil, domainerror.ErrTransactionNotFound
			},
			createFn: func(_ context.Context, transaction *entity.Transaction, _ int) error {
				if createErr != nil {
					return createErr
				}
				created = append(created, transaction)
				return nil
			},
		}
		categoryRepo := &stubCategoryRepo{findFn: categoryResolver(expenseCategory)}
		createUseCase := NewCreateTransactionUseCase(repo, categoryRepo, &recordingSummaryCache{})
		useCase := NewCloneTransactionUseCase(repo, createUseCase)
		useCase.now = func() time.Time { return now }
		return useCase, &created
	}

	t.Run("clone copies the source and defaults the date to now", func(t *testing.T) {
		useCase, created := newUseCase(nil)

		output, err := useCase.Execute(ctx, CloneTransactionInput{
			UserID:        userID,
			TransactionID: source.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		clone := output.Transaction
		if clone.ID == source.ID {
			t.Error("expected the clone to get its own identity")
		}
		if !clone.Amount.Equal(source.Amount) || clone.Description != source.Description || clone.Notes != source.Notes {
			t.Error("expected the clone to copy the source fields")
		}
		if !clone.Date.Equal(now) || clone.YearMonth != "2025-06" {
			t.Errorf("expected the clone dated now, got %v (%s)", clone.Date, clone.YearMonth)
		}
		if len(*created) != 1 {
			t.Errorf("expected the clone to pass through the create path, got %d inserts", len(*created))
		}
	})

	t.Run("overrides replace individual fields", func(t *testing.T) {
		useCase, _ := newUseCase(nil)
		amount := decimal.NewFromFloat(20.00)
		description := "Train ticket"

		output, err := useCase.Execute(ctx, CloneTransactionInput{
			UserID:        userID,
			TransactionID: source.ID,
			Amount:        &amount,
			Description:   &description,
			Tags:          []string{"rail"},
			TagsSet:       true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clone := output.Transaction
		if !clone.Amount.Equal(amount) || clone.Description != description {
			t.Error("expected overrides to replace the copied fields")
		}
		if len(clone.Tags) != 1 || clone.Tags[0] != "rail" {
			t.Errorf("expected overridden tags, got %v", clone.Tags)
		}
	})

	t.Run("clone is subject to the daily cap like any create", func(t *testing.T) {
		useCase, _ := newUseCase(domainerror.ErrDailyLimitReached)

		_, err := useCase.Execute(ctx, CloneTransactionInput{
			UserID:        userID,
			TransactionID: source.ID,
		})
		if !errors.Is(err, domainerror.ErrDailyLimitReached) {
			t.Errorf("expected ErrDailyLimitReached, got %v", err)
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		useCase, _ := newUseCase(nil)

		_, err := useCase.Execute(ctx, CloneTransactionInput{
			UserID:        userID,
			TransactionID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := entity.NewTransaction(userID, uuid.New(), decimal.NewFromFloat(12.34), entity.TransactionTypeIncome, "Refund", "", nil, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC))

	newUseCase := func() (*DeleteTransactionUseCase, *recordingSummaryCache) {
		cache := &recordingSummaryCache{}
		repo := &stubTransactionRepo{
			findFn: func(_ context.Context, id, user uuid.UUID) (*entity.Transaction, error) {
				if id == stored.ID && user == userID {
					copied := *stored
					return &copied, nil
				}
				return nil, domainerror.ErrTransactionNotFound
			},
			softDeleteFn: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
		}
		return NewDeleteTransactionUseCase(repo, cache), cache
	}

	t.Run("deletion subtracts the record from its month", func(t *testing.T) {
		useCase, cache := newUseCase()

		if err := useCase.Execute(ctx, DeleteTransactionInput{UserID: userID, TransactionID: stored.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cache.applies) != 1 {
			t.Fatalf("expected 1 projection delta, got %d", len(cache.applies))
		}
		delta := cache.applies[0].delta
		if delta.IncomeCents != -1234 || delta.IncomeCount != -1 {
			t.Errorf("expected income delta of -1234 cents, got %+v", delta)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		useCase, cache := newUseCase()

		err := useCase.Execute(ctx, DeleteTransactionInput{UserID: userID, TransactionID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
		if len(cache.applies) != 0 {
			t.Error("expected no projection delta on rejection")
		}
	})
}
