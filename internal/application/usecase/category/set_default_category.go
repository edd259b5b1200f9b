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

// SetDefaultCategoryInput represents the input for marking a category as the
// default of its (user, type) group.
type SetDefaultCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// SetDefaultCategoryOutput represents the output of the default swap.
type SetDefaultCategoryOutput struct {
	Category *entity.Category
}

// SetDefaultCategoryUseCase atomically moves the default flag within a
// (user, type) group. At most one non-deleted category per group carries the
// flag; the swap is a single read-modify-write so no external reader ever
// observes two defaults.
type SetDefaultCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSetDefaultCategoryUseCase creates a new SetDefaultCategoryUseCase instance.
func NewSetDefaultCategoryUseCase(categoryRepo adapter.CategoryRepository) *SetDefaultCategoryUseCase {
	return &SetDefaultCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the atomic default swap.
func (uc *SetDefaultCategoryUseCase) Execute(ctx context.Context, input SetDefaultCategoryInput) (*SetDefaultCategoryOutput, error) {
	category, err := uc.categoryRepo.SetDefault(ctx, input.UserID, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to set default category: %w", err)
	}

	return &SetDefaultCategoryOutput{
		Category: category,
	}, nil
}
