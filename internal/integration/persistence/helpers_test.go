// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/centsible/backend/internal/domain/entity"
	"github.com/centsible/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory sqlite database with the application schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

// seedCategory inserts a category directly and returns it.
func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name, categoryType, nil, entity.DefaultCategoryColor, entity.DefaultCategoryIcon, false, nil)
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

// seedTransaction inserts a transaction directly and returns it.
func seedTransaction(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, amount string, transactionType entity.TransactionType, tags []string, date time.Time) *entity.Transaction {
	t.Helper()

	transaction := entity.NewTransaction(
		userID, categoryID,
		decimal.RequireFromString(amount),
		transactionType,
		"seeded", "", tags, date,
	)
	if err := db.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}
