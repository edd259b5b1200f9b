// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centsible/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=50"`
	Type          string           `json:"type" binding:"required,oneof=expense income"`
	ParentID      *string          `json:"parent_id,omitempty"`
	Color         string           `json:"color,omitempty"`
	Icon          string           `json:"icon,omitempty"`
	IsDefault     bool             `json:"is_default,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
}

// UpdateCategoryRequest represents the request body for a partial category
// update. Type and parent_id are accepted only so an attempt to change them
// can be rejected explicitly.
type UpdateCategoryRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color         *string          `json:"color,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	IsDefault     *bool            `json:"is_default,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
	Type          *string          `json:"type,omitempty"`
	ParentID      *string          `json:"parent_id,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	ParentID      *string          `json:"parent_id,omitempty"`
	Color         string           `json:"color"`
	Icon          string           `json:"icon"`
	IsDefault     bool             `json:"is_default"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryTreeNode represents one node of the category hierarchy.
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryTreeNode `json:"children"`
}

// CategoryHierarchyResponse represents the category tree of one type.
type CategoryHierarchyResponse struct {
	Categories []CategoryTreeNode `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	var parentID *string
	if cat.ParentID != nil {
		id := cat.ParentID.String()
		parentID = &id
	}
	return CategoryResponse{
		ID:            cat.ID.String(),
		Name:          cat.Name,
		Type:          string(cat.Type),
		ParentID:      parentID,
		Color:         cat.Color,
		Icon:          cat.Icon,
		IsDefault:     cat.IsDefault,
		MonthlyBudget: cat.MonthlyBudget,
		CreatedAt:     cat.CreatedAt,
		UpdatedAt:     cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}

// ToCategoryHierarchyResponse converts category tree roots to a
// CategoryHierarchyResponse.
func ToCategoryHierarchyResponse(roots []*entity.CategoryNode) CategoryHierarchyResponse {
	return CategoryHierarchyResponse{
		Categories: toCategoryTreeNodes(roots),
	}
}

func toCategoryTreeNodes(nodes []*entity.CategoryNode) []CategoryTreeNode {
	result := make([]CategoryTreeNode, len(nodes))
	for i, node := range nodes {
		result[i] = CategoryTreeNode{
			CategoryResponse: ToCategoryResponse(node.Category),
			Children:         toCategoryTreeNodes(node.Children),
		}
	}
	return result
}
