// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Type and
// ParentID are carried only so an attempt to change them can be rejected;
// they are immutable after creation.
type UpdateCategoryInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Name          *string
	Color         *string
	Icon          *string
	IsDefault     *bool
	MonthlyBudget *decimal.Decimal
	Type          *entity.CategoryType
	ParentID      *uuid.UUID
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	// Reject patches touching immutable fields before any lookup.
	if input.Type != nil || input.ParentID != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryImmutable,
			"type and parent cannot be changed after creation",
			domainerror.ErrCategoryFieldImmutable,
		)
	}

	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateCategoryName(name); err != nil {
			return nil, err
		}

		// Re-run the uniqueness check excluding the record itself.
		if name != category.Name {
			exists, err := uc.categoryRepo.ExistsByNameUserAndType(ctx, name, input.UserID, category.Type, &category.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNameExists,
					"a category with this name already exists",
					domainerror.ErrCategoryNameExists,
				)
			}
		}
		category.Name = name
	}

	if input.Color != nil {
		if *input.Color != "" && !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidColorFormat,
			)
		}
		category.Color = *input.Color
	}

	if input.Icon != nil {
		if *input.Icon != "" && !iconRegex.MatchString(*input.Icon) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"icon must be a lowercase token",
				domainerror.ErrInvalidColorFormat,
			)
		}
		category.Icon = *input.Icon
	}

	if input.MonthlyBudget != nil {
		if err := validateMonthlyBudget(input.MonthlyBudget); err != nil {
			return nil, err
		}
		category.MonthlyBudget = input.MonthlyBudget
	}

	if input.IsDefault != nil {
		category.IsDefault = *input.IsDefault
	}

	category.UpdatedAt = time.Now().UTC()

	// Update performs the atomic default swap in the same database
	// transaction when IsDefault is set.
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
