// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// All lookups are scoped to the owning user and exclude soft-deleted records
// unless stated otherwise; a record owned by another user surfaces as not found.
type CategoryRepository interface {
	// Create inserts a new category. When category.IsDefault is true, the
	// previous default for the same (user, type) is cleared in the same
	// database transaction.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a non-deleted category by id for the user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByIDAndUserIncludingDeleted retrieves a category regardless of its
	// soft-delete state.
	FindByIDAndUserIncludingDeleted(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all non-deleted categories for the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByUserAndType retrieves non-deleted categories for the user
	// filtered by type.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error)

	// ExistsByNameUserAndType checks name uniqueness among non-deleted
	// categories of the same (user, type). excludeID, when non-nil, removes
	// the given record from consideration (used by updates).
	ExistsByNameUserAndType(ctx context.Context, name string, userID uuid.UUID, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error)

	// Update persists changes to an existing category. When
	// category.IsDefault is true, the previous default for the same
	// (user, type) is cleared in the same database transaction.
	Update(ctx context.Context, category *entity.Category) error

	// SetDefault atomically clears every other default of the category's
	// (user, type) group and marks the given category as default. Returns
	// the updated category.
	SetDefault(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error)

	// SoftDeleteCascade soft-deletes the given categories in a single
	// transaction so they share one deletion timestamp.
	SoftDeleteCascade(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}
