package services

import (
	"fmt"
	"testing"

	"vestpay/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbSeq   int
	userSeq int
	prodSeq int
)

// newTestDB opens a fresh named in-memory SQLite database. The shared
// cache keeps every pooled connection pointed at the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Investment{},
		&models.Transaction{},
		&models.AppSettings{},
	))

	require.NoError(t, db.Create(&models.AppSettings{
		ReferralBonusPercentage: 5,
		WithdrawalFeePercentage: 0,
	}).Error)

	return db
}

func createUser(t *testing.T, db *gorm.DB, balance float64, referredBy string) *models.User {
	t.Helper()

	userSeq++
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     fmt.Sprintf("user%d", userSeq),
		Email:        fmt.Sprintf("user%d@test.local", userSeq),
		Password:     string(hash),
		Role:         "USER",
		Balance:      balance,
		ReferralCode: fmt.Sprintf("CODE%04d", userSeq),
		ReferredBy:   referredBy,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, price, dailyIncome float64, days int) *models.Product {
	t.Helper()

	prodSeq++
	product := &models.Product{
		Name:         fmt.Sprintf("Plan %d", prodSeq),
		Price:        price,
		DailyIncome:  dailyIncome,
		Days:         days,
		TotalRevenue: dailyIncome * float64(days),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}

func countTransactions(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, txType).
		Count(&count).Error)
	return count
}
