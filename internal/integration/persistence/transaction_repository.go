// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithDailyLimit counts the user's transactions on the same calendar
// date and inserts the new record, both inside one database transaction so
// concurrent writers cannot both pass the check.
func (r *transactionRepository) CreateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countOnDate(tx, transaction.UserID, transaction.Date, nil)
		if err != nil {
			return err
		}
		if count >= int64(limit) {
			return domainerror.ErrDailyLimitReached
		}
		return tx.Create(transactionModel).Error
	})
}

// UpdateWithDailyLimit re-checks the daily count for the transaction's date
// with the record itself excluded, then saves, inside one database transaction.
func (r *transactionRepository) UpdateWithDailyLimit(ctx context.Context, transaction *entity.Transaction, limit int) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countOnDate(tx, transaction.UserID, transaction.Date, &transaction.ID)
		if err != nil {
			return err
		}
		if count >= int64(limit) {
			return domainerror.ErrDailyLimitReached
		}
		return tx.Save(transactionModel).Error
	})
}

// FindByIDAndUser retrieves a non-deleted transaction by its ID for the user.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDAndUserIncludingDeleted retrieves a transaction regardless of its
// soft-delete state.
func (r *transactionRepository) FindByIDAndUserIncludingDeleted(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves one page of transactions matching the filter, with
// their categories, plus the total match count.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, page adapter.TransactionPage, sort adapter.TransactionSort) (*adapter.TransactionListResult, error) {
	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).Count(&total).Error; err != nil {
		return nil, err
	}

	order := sortField(sort.Field) + " " + sortDirection(sort.Order)
	var transactionModels []model.TransactionModel
	result := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).
		Preload("Category", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Order(order).
		Order("created_at DESC").
		Offset((page.Page - 1) * page.Size).
		Limit(page.Size).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// typeTotalsRow is the scan target for per-type aggregate queries.
type typeTotalsRow struct {
	Type  string
	Total decimal.Decimal
	Count int64
}

// GetTotals aggregates per-type totals and counts over the filter scope.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	var rows []typeTotalsRow
	result := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return totalsFromRows(rows), nil
}

// GetMonthlyTotals aggregates per-type totals and counts for one "YYYY-MM" month.
func (r *transactionRepository) GetMonthlyTotals(ctx context.Context, userID uuid.UUID, yearMonth string) (*adapter.TransactionTotals, error) {
	var rows []typeTotalsRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND year_month = ?", userID, yearMonth).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return totalsFromRows(rows), nil
}

// breakdownRow is the scan target for the category breakdown query.
type breakdownRow struct {
	CategoryID    string
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
	Type          string
	Total         decimal.Decimal
	Count         int64
}

// GetCategoryBreakdown aggregates totals grouped by (category, type), ordered
// by total descending. Soft-deleted categories drop out via the join.
func (r *transactionRepository) GetCategoryBreakdown(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, transactionType *entity.TransactionType) ([]entity.CategoryBreakdownEntry, error) {
	query := r.db.WithContext(ctx).
		Table("transactions").
		Joins("JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Where("transactions.user_id = ? AND transactions.deleted_at IS NULL", userID)
	if startDate != nil {
		query = query.Where("transactions.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("transactions.date <= ?", *endDate)
	}
	if transactionType != nil {
		query = query.Where("transactions.type = ?", string(*transactionType))
	}

	var rows []breakdownRow
	result := query.
		Select("transactions.category_id AS category_id, categories.name AS category_name, categories.color AS category_color, categories.icon AS category_icon, transactions.type AS type, COALESCE(SUM(transactions.amount), 0) AS total, COUNT(*) AS count").
		Group("transactions.category_id, categories.name, categories.color, categories.icon, transactions.type").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.CategoryBreakdownEntry, len(rows))
	for i, row := range rows {
		entry := entity.CategoryBreakdownEntry{
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryColor: row.CategoryColor,
			CategoryIcon:  row.CategoryIcon,
			Type:          entity.TransactionType(row.Type),
			Total:         row.Total,
			Count:         row.Count,
		}
		if row.Count > 0 {
			entry.AvgAmount = row.Total.Div(decimal.NewFromInt(row.Count)).Round(2)
		}
		entries[i] = entry
	}
	return entries, nil
}

// SoftDelete marks a transaction as deleted.
func (r *transactionRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// countOnDate counts non-deleted transactions sharing the calendar date of
// the given instant, in that instant's own location.
func countOnDate(tx *gorm.DB, userID uuid.UUID, date time.Time, excludeID *uuid.UUID) (int64, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := tx.Model(&model.TransactionModel{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter translates a TransactionFilter into WHERE clauses. The tag
// match wraps the stored comma-joined list in commas so "food" cannot match
// "fast-food".
func applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	for _, tag := range filter.Tags {
		query = query.Where("(',' || tags || ',') LIKE ?", fmt.Sprintf("%%,%s,%%", tag))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}

// totalsFromRows folds per-type aggregate rows into TransactionTotals.
func totalsFromRows(rows []typeTotalsRow) *adapter.TransactionTotals {
	totals := &adapter.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = row.Total
			totals.IncomeCount = row.Count
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = row.Total
			totals.ExpenseCount = row.Count
		}
	}
	return totals
}

// sortField maps a sort field to its column. Unknown values fall back to date.
func sortField(field adapter.TransactionSortField) string {
	if field == adapter.SortFieldAmount {
		return "amount"
	}
	return "date"
}

// sortDirection maps a sort order to SQL. Unknown values fall back to DESC.
func sortDirection(order adapter.SortOrder) string {
	if order == adapter.SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}
