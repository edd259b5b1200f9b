// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// GetCategoryHierarchyInput represents the input for hierarchy retrieval.
type GetCategoryHierarchyInput struct {
	UserID uuid.UUID
	Type   entity.CategoryType
}

// GetCategoryHierarchyOutput represents the output of hierarchy retrieval.
type GetCategoryHierarchyOutput struct {
	Roots []*entity.CategoryNode
}

// GetCategoryHierarchyUseCase builds the parent->children tree from the flat
// non-deleted category set of one (user, type) group.
type GetCategoryHierarchyUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryHierarchyUseCase creates a new GetCategoryHierarchyUseCase instance.
func NewGetCategoryHierarchyUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryHierarchyUseCase {
	return &GetCategoryHierarchyUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the category tree. Children whose parent was soft-deleted
// are promoted to roots rather than dropped.
func (uc *GetCategoryHierarchyUseCase) Execute(ctx context.Context, input GetCategoryHierarchyInput) (*GetCategoryHierarchyOutput, error) {
	if !entity.IsValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	categories, err := uc.categoryRepo.FindByUserAndType(ctx, input.UserID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return &GetCategoryHierarchyOutput{
		Roots: entity.BuildCategoryTree(categories),
	}, nil
}
