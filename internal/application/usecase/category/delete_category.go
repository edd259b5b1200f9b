// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase soft-deletes a category and, recursively, every
// non-deleted descendant in the same logical operation so they share one
// deletion timestamp.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the cascading soft delete.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	// Descendants can only live in the same (user, type) group; one scan of
	// that group is enough to walk the whole subtree.
	siblings, err := uc.categoryRepo.FindByUserAndType(ctx, input.UserID, category.Type)
	if err != nil {
		return fmt.Errorf("failed to load categories for cascade: %w", err)
	}

	ids := collectSubtreeIDs(category.ID, siblings)
	if err := uc.categoryRepo.SoftDeleteCascade(ctx, input.UserID, ids); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// collectSubtreeIDs returns rootID plus the ids of every descendant found in
// the flat category set, in breadth-first order. The traversal is bounded by
// the depth invariant.
func collectSubtreeIDs(rootID uuid.UUID, categories []*entity.Category) []uuid.UUID {
	children := make(map[uuid.UUID][]uuid.UUID, len(categories))
	for _, cat := range categories {
		if cat.ParentID != nil {
			children[*cat.ParentID] = append(children[*cat.ParentID], cat.ID)
		}
	}

	ids := []uuid.UUID{rootID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids
}
