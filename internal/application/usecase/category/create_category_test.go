// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies color and icon defaults", func(t *testing.T) {
		useCase := NewCreateCategoryUseCase(newFakeCategoryRepo())

		output, err := useCase.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "  Food  ",
			Type:   entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Food" {
			t.Errorf("expected trimmed name, got %q", output.Category.Name)
		}
		if output.Category.Color != entity.DefaultCategoryColor || output.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected defaults, got %q/%q", output.Category.Color, output.Category.Icon)
		}
	})

	t.Run("rejects a duplicate name within the same type", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		useCase := NewCreateCategoryUseCase(repo)

		if _, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}

		// The same name under the other type is a separate namespace.
		if _, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeIncome}); err != nil {
			t.Errorf("unexpected error for the income namespace: %v", err)
		}
	})

	t.Run("enforces the maximum tree depth", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		useCase := NewCreateCategoryUseCase(repo)

		root, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Root", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		child, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Child", Type: entity.CategoryTypeExpense, ParentID: &root.Category.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		grandchild, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Grandchild", Type: entity.CategoryTypeExpense, ParentID: &child.Category.ID})
		if err != nil {
			t.Fatalf("unexpected error at depth three: %v", err)
		}

		_, err = useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Too deep", Type: entity.CategoryTypeExpense, ParentID: &grandchild.Category.ID})
		if !errors.Is(err, domainerror.ErrCategoryDepthExceeded) {
			t.Errorf("expected ErrCategoryDepthExceeded, got %v", err)
		}
	})

	t.Run("rejects a parent of the other type", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		useCase := NewCreateCategoryUseCase(repo)

		root, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Salary", Type: entity.CategoryTypeIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense, ParentID: &root.Category.ID})
		if !errors.Is(err, domainerror.ErrParentTypeMismatch) {
			t.Errorf("expected ErrParentTypeMismatch, got %v", err)
		}
	})

	t.Run("rejects an unknown or foreign parent", func(t *testing.T) {
		useCase := NewCreateCategoryUseCase(newFakeCategoryRepo())
		parentID := uuid.New()

		_, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense, ParentID: &parentID})
		if !errors.Is(err, domainerror.ErrParentCategoryNotFound) {
			t.Errorf("expected ErrParentCategoryNotFound, got %v", err)
		}
	})

	t.Run("validates inputs", func(t *testing.T) {
		useCase := NewCreateCategoryUseCase(newFakeCategoryRepo())
		badBudget := decimal.NewFromInt(-1)

		tests := []struct {
			name  string
			input CreateCategoryInput
			want  error
		}{
			{"blank name", CreateCategoryInput{UserID: userID, Name: "   ", Type: entity.CategoryTypeExpense}, domainerror.ErrInvalidCategoryName},
			{"bad type", CreateCategoryInput{UserID: userID, Name: "Food", Type: "transfer"}, domainerror.ErrInvalidCategoryType},
			{"bad color", CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense, Color: "red"}, domainerror.ErrInvalidColorFormat},
			{"negative budget", CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense, MonthlyBudget: &badBudget}, domainerror.ErrInvalidMonthlyBudget},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := useCase.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})

	t.Run("a new default demotes the previous one", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		useCase := NewCreateCategoryUseCase(repo)

		first, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food", Type: entity.CategoryTypeExpense, IsDefault: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := useCase.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Transport", Type: entity.CategoryTypeExpense, IsDefault: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		demoted, err := repo.FindByIDAndUser(ctx, first.Category.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if demoted.IsDefault {
			t.Error("expected the first default to be demoted")
		}
	})
}
