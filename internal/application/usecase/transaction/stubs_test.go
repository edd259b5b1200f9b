// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// stubTransactionRepo overrides the repository methods a test cares about;
// calling an unstubbed method panics through the nil embedded interface.
type stubTransactionRepo struct {
	adapter.TransactionRepository
	createFn       func(ctx context.Context, transaction *entity.Transaction, limit int) error
	updateFn       func(ctx context.Context, transaction *entity.Transaction, limit int) error
	findFn         func(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)
	softDeleteFn   func(ctx context.Context, id, userID uuid.UUID) error
	findByFilterFn func(ctx context.Context, filter adapter.TransactionFilter, page adapter.TransactionPage, sort adapter.TransactionSort) (*adapter.TransactionListResult, error)
	getTotalsFn    func(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error)
}

func (s *stubTransactionRepo) CreateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error {
	return s.createFn(ctx, transaction, limit)
}

func (s *stubTransactionRepo) UpdateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error {
	return s.updateFn(ctx, transaction, limit)
}

func (s *stubTransactionRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	return s.findFn(ctx, id, userID)
}

func (s *stubTransactionRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return s.softDeleteFn(ctx, id, userID)
}

func (s *stubTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, page adapter.TransactionPage, sort adapter.TransactionSort) (*adapter.TransactionListResult, error) {
	return s.findByFilterFn(ctx, filter, page, sort)
}

func (s *stubTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return s.getTotalsFn(ctx, filter)
}

// stubCategoryRepo resolves categories from a fixed set.
type stubCategoryRepo struct {
	adapter.CategoryRepository
	findFn func(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)
}

func (s *stubCategoryRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	return s.findFn(ctx, id, userID)
}

// appliedDelta records one projection update.
type appliedDelta struct {
	userID    uuid.UUID
	yearMonth string
	delta     adapter.SummaryDelta
}

// recordingSummaryCache records every Apply and Invalidate call.
type recordingSummaryCache struct {
	applies     []appliedDelta
	invalidated []string
	applyErr    error
}

func (c *recordingSummaryCache) Apply(_ context.Context, userID uuid.UUID, yearMonth string, delta adapter.SummaryDelta) error {
	if c.applyErr != nil {
		return c.applyErr
	}
	c.applies = append(c.applies, appliedDelta{userID: userID, yearMonth: yearMonth, delta: delta})
	return nil
}

func (c *recordingSummaryCache) Get(context.Context, uuid.UUID, string) (*adapter.CachedSummary, bool, error) {
	return nil, false, nil
}

func (c *recordingSummaryCache) Seed(context.Context, uuid.UUID, string, adapter.TransactionTotals) error {
	return nil
}

func (c *recordingSummaryCache) Invalidate(_ context.Context, _ uuid.UUID, yearMonth string) error {
	c.invalidated = append(c.invalidated, yearMonth)
	return nil
}

// categoryResolver returns a findFn serving the given categories by id for
// their owner, and ErrCategoryNotFound otherwise.
func categoryResolver(categories ...*entity.Category) func(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	return func(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
		for _, category := range categories {
			if category.ID == id && category.UserID == userID {
				return category, nil
			}
		}
		return nil, domainerror.ErrCategoryNotFound
	}
}
