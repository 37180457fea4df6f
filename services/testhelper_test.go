package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-api/models"
)

// newTestDB opens a fresh in-memory database per test. The pool is pinned to
// a single connection: every sqlite :memory: connection is its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := models.User{
		Username:     "user-" + email,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func newTestRestaurant(t *testing.T, db *gorm.DB, ownerID uint) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:     "Testaurant",
		OwnerID:  ownerID,
		Address:  "1 Test St",
		IsActive: true,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return &restaurant
}

func newTestMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name, price string) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
