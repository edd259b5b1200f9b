// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category. A default category clears the previous
// default of its (user, type) group inside the same transaction.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	if !category.IsDefault {
		return r.db.WithContext(ctx).Create(categoryModel).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, category.UserID, string(category.Type), category.ID); err != nil {
			return err
		}
		return tx.Create(categoryModel).Error
	})
}

// FindByIDAndUser retrieves a non-deleted category by its ID for the user.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByIDAndUserIncludingDeleted retrieves a category regardless of its
// soft-delete state.
func (r *categoryRepository) FindByIDAndUserIncludingDeleted(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all non-deleted categories for the user.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByUserAndType retrieves non-deleted categories for the user filtered by type.
func (r *categoryRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(categoryType)).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsByNameUserAndType checks name uniqueness among non-deleted categories
// of the same (user, type).
func (r *categoryRepository) ExistsByNameUserAndType(ctx context.Context, name string, userID uuid.UUID, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ? AND user_id = ? AND type = ?", name, userID, string(categoryType))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing category. A category marked default clears the
// previous default of its (user, type) group inside the same transaction.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	if !category.IsDefault {
		return r.db.WithContext(ctx).Save(categoryModel).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, category.UserID, string(category.Type), category.ID); err != nil {
			return err
		}
		return tx.Save(categoryModel).Error
	})
}

// SetDefault atomically moves the default flag of a (user, type) group onto
// the given category.
func (r *categoryRepository) SetDefault(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", categoryID, userID).First(&categoryModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrCategoryNotFound
			}
			return err
		}

		if err := clearDefault(tx, userID, categoryModel.Type, categoryID); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.CategoryModel{}).
			Where("id = ?", categoryID).
			Updates(map[string]interface{}{"is_default": true, "updated_at": now}).Error; err != nil {
			return err
		}
		categoryModel.IsDefault = true
		categoryModel.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categoryModel.ToEntity(), nil
}

// SoftDeleteCascade soft-deletes the given categories in one statement so
// they share a single deletion timestamp.
func (r *categoryRepository) SoftDeleteCascade(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.CategoryModel{}).Error
}

// clearDefault unsets the default flag on every other category of the
// (user, type) group.
func clearDefault(tx *gorm.DB, userID uuid.UUID, categoryType string, excludeID uuid.UUID) error {
	return tx.Model(&model.CategoryModel{}).
		Where("user_id = ? AND type = ? AND is_default = ? AND id <> ?", userID, categoryType, true, excludeID).
		Updates(map[string]interface{}{"is_default": false, "updated_at": time.Now()}).Error
}
