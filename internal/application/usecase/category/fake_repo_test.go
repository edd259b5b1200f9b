// Package category contains category-related use cases.
package category

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory adapter.CategoryRepository mirroring the
// persistence semantics the use cases rely on: user scoping, soft-delete
// visibility and the transactional default swap.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if category.IsDefault {
		r.clearDefault(category.UserID, category.Type, category.ID)
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID || category.DeletedAt != nil {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByIDAndUserIncludingDeleted(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return r.collect(func(c *entity.Category) bool {
		return c.UserID == userID && c.DeletedAt == nil
	}), nil
}

func (r *fakeCategoryRepo) FindByUserAndType(_ context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	return r.collect(func(c *entity.Category) bool {
		return c.UserID == userID && c.Type == categoryType && c.DeletedAt == nil
	}), nil
}

func (r *fakeCategoryRepo) ExistsByNameUserAndType(_ context.Context, name string, userID uuid.UUID, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.DeletedAt != nil || category.UserID != userID || category.Type != categoryType || category.Name != name {
			continue
		}
		if excludeID != nil && category.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if category.IsDefault {
		r.clearDefault(category.UserID, category.Type, category.ID)
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) SetDefault(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := r.FindByIDAndUser(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	r.clearDefault(userID, category.Type, categoryID)
	stored := r.categories[categoryID]
	stored.IsDefault = true
	stored.UpdatedAt = time.Now().UTC()
	copied := *stored
	return &copied, nil
}

func (r *fakeCategoryRepo) SoftDeleteCascade(_ context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	now := time.Now().UTC()
	for _, id := range ids {
		if category, ok := r.categories[id]; ok && category.UserID == userID && category.DeletedAt == nil {
			deletedAt := now
			category.DeletedAt = &deletedAt
		}
	}
	return nil
}

func (r *fakeCategoryRepo) clearDefault(userID uuid.UUID, categoryType entity.CategoryType, excludeID uuid.UUID) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Type == categoryType && category.ID != excludeID {
			category.IsDefault = false
		}
	}
}

func (r *fakeCategoryRepo) collect(keep func(*entity.Category) bool) []*entity.Category {
	var result []*entity.Category
	for _, category := range r.categories {
		if keep(category) {
			copied := *category
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
