package services

import (
	"testing"
	"time"

	"vestpay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralBonusPaidOnFirstInvestment(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, 0, "")
	referee := createUser(t, db, 1000, referrer.ReferralCode)
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, referee.ID, product.ID, baseTime)
	require.NoError(t, err)

	// 5% of 600.
	assert.Equal(t, float64(30), reloadUser(t, db, referrer.ID).Balance)

	var record models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?",
		referrer.ID, models.TransactionTypeReferral).First(&record).Error)
	assert.Equal(t, float64(30), record.Amount)
	assert.Equal(t, models.TransactionStatusSuccess, record.Status)
}

func TestReferralFiresOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, 0, "")
	referee := createUser(t, db, 2000, referrer.ReferralCode)
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, referee.ID, product.ID, baseTime)
	require.NoError(t, err)
	_, err = Invest(db, referee.ID, product.ID, baseTime.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), countTransactions(t, db, referrer.ID, models.TransactionTypeReferral))
	assert.Equal(t, float64(30), reloadUser(t, db, referrer.ID).Balance)
}

func TestStaleReferralCodeSilentlyIgnored(t *testing.T) {
	db := newTestDB(t)
	referee := createUser(t, db, 1000, "GHOST999")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, referee.ID, product.ID, baseTime)
	require.NoError(t, err)

	var referralCount int64
	db.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionTypeReferral).
		Count(&referralCount)
	assert.Zero(t, referralCount)
	assert.Equal(t, float64(400), reloadUser(t, db, referee.ID).Balance)
}

func TestReferralUsesCurrentSettings(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, 0, "")
	referee := createUser(t, db, 1000, referrer.ReferralCode)
	product := createProduct(t, db, 600, 50, 30)

	bonus := 10.0
	_, err := UpdateSettings(db, SettingsInput{ReferralBonusPercentage: &bonus})
	require.NoError(t, err)

	_, err = Invest(db, referee.ID, product.ID, baseTime)
	require.NoError(t, err)

	assert.Equal(t, float64(60), reloadUser(t, db, referrer.ID).Balance)
}

func TestZeroBonusPercentageWritesNoTransaction(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, 0, "")
	referee := createUser(t, db, 1000, referrer.ReferralCode)
	product := createProduct(t, db, 600, 50, 30)

	bonus := 0.0
	_, err := UpdateSettings(db, SettingsInput{ReferralBonusPercentage: &bonus})
	require.NoError(t, err)

	_, err = Invest(db, referee.ID, product.ID, baseTime)
	require.NoError(t, err)

	assert.Zero(t, countTransactions(t, db, referrer.ID, models.TransactionTypeReferral))
	assert.Zero(t, reloadUser(t, db, referrer.ID).Balance)
}
