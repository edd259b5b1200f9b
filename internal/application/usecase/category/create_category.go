// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
)

// MaxMonthlyBudget is the ceiling for a category's monthly budget.
var MaxMonthlyBudget = decimal.NewFromInt(1_000_000)

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// iconRegex restricts icons to lowercase identifier tokens.
var iconRegex = regexp.MustCompile(`^[a-z0-9-]{1,50}$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.CategoryType
	ParentID      *uuid.UUID
	Color         string // Optional, defaults to DefaultCategoryColor
	Icon          string // Optional, defaults to DefaultCategoryIcon
	IsDefault     bool
	MonthlyBudget *decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	if !entity.IsValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	color, icon, err := resolveColorAndIcon(input.Color, input.Icon)
	if err != nil {
		return nil, err
	}

	if err := validateMonthlyBudget(input.MonthlyBudget); err != nil {
		return nil, err
	}

	// Parent checks (existence, ownership, type, depth) run before the
	// sibling-uniqueness check when a parent is given.
	if input.ParentID != nil {
		if err := uc.validateParent(ctx, input.UserID, *input.ParentID, input.Type); err != nil {
			return nil, err
		}
	}

	exists, err := uc.categoryRepo.ExistsByNameUserAndType(ctx, name, input.UserID, input.Type, nil)
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

	category := entity.NewCategory(
		input.UserID,
		name,
		input.Type,
		input.ParentID,
		color,
		icon,
		input.IsDefault,
		input.MonthlyBudget,
	)

	// Create clears the prior default for (user, type) in the same database
	// transaction when IsDefault is set.
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateParent checks the parent exists for this user, has the same type,
// and leaves room under the maximum tree depth.
func (uc *CreateCategoryUseCase) validateParent(ctx context.Context, userID, parentID uuid.UUID, categoryType entity.CategoryType) error {
	parent, err := uc.categoryRepo.FindByIDAndUser(ctx, parentID, userID)
	if err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeParentNotFound,
			"parent category not found",
			domainerror.ErrParentCategoryNotFound,
		)
	}

	if parent.Type != categoryType {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeParentTypeMismatch,
			"parent category must be of the same type",
			domainerror.ErrParentTypeMismatch,
		)
	}

	depth, err := uc.depthOf(ctx, parent)
	if err != nil {
		return err
	}
	if depth >= entity.MaxCategoryDepth {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryDepthExceeded,
			fmt.Sprintf("category tree cannot exceed %d levels", entity.MaxCategoryDepth),
			domainerror.ErrCategoryDepthExceeded,
		)
	}
	return nil
}

// depthOf walks the parent chain and returns the category's depth, with a
// root at depth 1. The walk is bounded by the depth invariant itself.
func (uc *CreateCategoryUseCase) depthOf(ctx context.Context, category *entity.Category) (int, error) {
	depth := 1
	current := category
	for current.ParentID != nil && depth <= entity.MaxCategoryDepth {
		parent, err := uc.categoryRepo.FindByIDAndUser(ctx, *current.ParentID, category.UserID)
		if err != nil {
			// A missing ancestor means the chain is broken by a soft delete;
			// treat the walked prefix as the full depth.
			return depth, nil
		}
		depth++
		current = parent
	}
	return depth, nil
}

// validateCategoryName checks the trimmed name is non-empty and within bounds.
func validateCategoryName(name string) error {
	if name == "" || len(name) > MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
			domainerror.ErrInvalidCategoryName,
		)
	}
	return nil
}

// resolveColorAndIcon validates the optional color and icon and applies the
// entity defaults when they are absent.
func resolveColorAndIcon(color, icon string) (string, string, error) {
	if color != "" && !hexColorRegex.MatchString(color) {
		return "", "", domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	if icon != "" && !iconRegex.MatchString(icon) {
		return "", "", domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"icon must be a lowercase token",
			domainerror.ErrInvalidColorFormat,
		)
	}
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	return color, icon, nil
}

// validateMonthlyBudget checks the optional budget is within [0, ceiling].
func validateMonthlyBudget(budget *decimal.Decimal) error {
	if budget == nil {
		return nil
	}
	if budget.IsNegative() || budget.GreaterThan(MaxMonthlyBudget) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidMonthlyBudget,
			"monthly budget must be between 0 and the configured ceiling",
			domainerror.ErrInvalidMonthlyBudget,
		)
	}
	return nil
}
