// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/centsible/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_categories_user_type"`
	Name          string           `gorm:"type:varchar(50);not null"`
	Type          string           `gorm:"type:varchar(10);not null;index:idx_categories_user_type"`
	ParentID      *uuid.UUID       `gorm:"type:uuid;index"`
	Color         string           `gorm:"type:varchar(7);default:'#CCCCCC'"`
	Icon          string           `gorm:"type:varchar(50);default:'tag'"`
	IsDefault     bool             `gorm:"not null;default:false"`
	MonthlyBudget *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	DeletedAt     gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	Parent *CategoryModel `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Category{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.CategoryType(m.Type),
		ParentID:      m.ParentID,
		Color:         m.Color,
		Icon:          m.Icon,
		IsDefault:     m.IsDefault,
		MonthlyBudget: m.MonthlyBudget,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var deletedAt gorm.DeletedAt
	if category.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *category.DeletedAt, Valid: true}
	}

	return &CategoryModel{
		ID:            category.ID,
		UserID:        category.UserID,
		Name:          category.Name,
		Type:          string(category.Type),
		ParentID:      category.ParentID,
		Color:         category.Color,
		Icon:          category.Icon,
		IsDefault:     category.IsDefault,
		MonthlyBudget: category.MonthlyBudget,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
