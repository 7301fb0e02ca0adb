// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/seller-products/internal/database"
	"github.com/javajoker/seller-products/internal/models"
)

// NewDB opens a migrated in-memory sqlite database that lives for the duration of t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection to ":memory:" would be its own database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// CreateSeller inserts a seller directly, bypassing the service layer.
func CreateSeller(t testing.TB, db *gorm.DB, name string) *models.Seller {
	t.Helper()

	seller := &models.Seller{Name: name}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

// CreateProduct inserts a product owned by seller.
func CreateProduct(t testing.TB, db *gorm.DB, seller *models.Seller, name string, price int64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		SellerID:    seller.ID,
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(price),
		Stock:       stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
