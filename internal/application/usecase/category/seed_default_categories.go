// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
)

// starterCategory describes one entry of the starter set installed for a new
// account. Exactly one entry per type is the default.
type starterCategory struct {
	name      string
	catType   entity.CategoryType
	color     string
	icon      string
	isDefault bool
}

var starterCategories = []starterCategory{
	{name: "Salary", catType: entity.CategoryTypeIncome, color: "#10B981", icon: "banknote", isDefault: true},
	{name: "Other Income", catType: entity.CategoryTypeIncome, color: "#34D399", icon: "coins"},
	{name: "Food", catType: entity.CategoryTypeExpense, color: "#F59E0B", icon: "utensils"},
	{name: "Housing", catType: entity.CategoryTypeExpense, color: "#6366F1", icon: "home"},
	{name: "Transport", catType: entity.CategoryTypeExpense, color: "#3B82F6", icon: "bus"},
	{name: "Other Expenses", catType: entity.CategoryTypeExpense, color: "#CCCCCC", icon: "tag", isDefault: true},
}

// SeedDefaultCategoriesUseCase installs the starter category set for a newly
// registered user. Seeding is a convenience: a failure is logged and does not
// roll back account creation.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute installs the starter set for the user.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, userID uuid.UUID) {
	for _, starter := range starterCategories {
		category := entity.NewCategory(
			userID,
			starter.name,
			starter.catType,
			nil,
			starter.color,
			starter.icon,
			starter.isDefault,
			nil,
		)
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			slog.Warn("failed to seed starter category",
				"userID", userID,
				"name", starter.name,
				"error", err,
			)
		}
	}
}
