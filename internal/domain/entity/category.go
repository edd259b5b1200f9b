// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the color applied when none is given.
const DefaultCategoryColor = "#CCCCCC"

// DefaultCategoryIcon is the icon applied when none is given.
const DefaultCategoryIcon = "tag"

// MaxCategoryDepth is the maximum depth of the category tree
// (root -> child -> grandchild).
const MaxCategoryDepth = 3

// Category represents an income or expense category owned by a user.
// Categories form a tree via ParentID. Type, UserID and ParentID are
// immutable after creation.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          CategoryType
	ParentID      *uuid.UUID
	Color         string
	Icon          string
	IsDefault     bool
	MonthlyBudget *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Defaulting of color and icon is applied in the use case layer before
// calling this constructor.
func NewCategory(
	userID uuid.UUID,
	name string,
	categoryType CategoryType,
	parentID *uuid.UUID,
	color, icon string,
	isDefault bool,
	monthlyBudget *decimal.Decimal,
) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Type:          categoryType,
		ParentID:      parentID,
		Color:         color,
		Icon:          icon,
		IsDefault:     isDefault,
		MonthlyBudget: monthlyBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidCategoryType reports whether the given type is expense or income.
func IsValidCategoryType(categoryType CategoryType) bool {
	return categoryType == CategoryTypeExpense || categoryType == CategoryTypeIncome
}

// CategoryNode is a category together with its resolved children, used to
// return the hierarchy as a tree.
type CategoryNode struct {
	Category *Category
	Children []*CategoryNode
}

// BuildCategoryTree assembles parent->children trees from a flat set of
// non-deleted categories. Children whose parent is missing from the set
// are promoted to roots rather than dropped.
func BuildCategoryTree(categories []*Category) []*CategoryNode {
	nodes := make(map[uuid.UUID]*CategoryNode, len(categories))
	for _, cat := range categories {
		nodes[cat.ID] = &CategoryNode{Category: cat}
	}

	roots := make([]*CategoryNode, 0, len(categories))
	for _, cat := range categories {
		node := nodes[cat.ID]
		if cat.ParentID != nil {
			if parent, ok := nodes[*cat.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
