package services

import (
	"testing"
	"time"

	"vestpay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestInvestDeductsPriceAndWritesLedger(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 30)

	investment, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	assert.Equal(t, float64(400), reloadUser(t, db, user.ID).Balance)
	assert.Equal(t, float64(0), investment.ClaimedAmount)
	assert.True(t, investment.PurchaseDate.Equal(baseTime))
	assert.True(t, investment.LastClaimDate.Equal(baseTime))

	snap, ok := investment.TermsSnapshot()
	require.True(t, ok)
	assert.Equal(t, float64(600), snap.Price)
	assert.Equal(t, float64(50), snap.DailyIncome)
	assert.Equal(t, 30, snap.Days)

	var record models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?",
		user.ID, models.TransactionTypeInvestment).First(&record).Error)
	assert.Equal(t, float64(600), record.Amount)
	assert.Equal(t, models.TransactionStatusSuccess, record.Status)
}

func TestInvestInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 100, "")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// No state change on failure.
	assert.Equal(t, float64(100), reloadUser(t, db, user.ID).Balance)
	var investments int64
	db.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&investments)
	assert.Zero(t, investments)
	assert.Zero(t, countTransactions(t, db, user.ID, models.TransactionTypeInvestment))
}

func TestInvestUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	_, err := Invest(db, user.ID, 9999, baseTime)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvestPurchaseLimit(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 5000, "")
	product := createProduct(t, db, 600, 50, 30)
	product.PurchaseLimit = 1
	require.NoError(t, db.Save(product).Error)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	_, err = Invest(db, user.ID, product.ID, baseTime.Add(time.Hour))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, float64(4400), reloadUser(t, db, user.ID).Balance)
}

func TestClaimAfterWindow(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 30)

	investment, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	result, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, float64(50), result.Total)
	assert.Equal(t, 1, result.Claimed)

	assert.Equal(t, float64(450), reloadUser(t, db, user.ID).Balance)

	var reloaded models.Investment
	require.NoError(t, db.First(&reloaded, investment.ID).Error)
	assert.Equal(t, float64(50), reloaded.ClaimedAmount)
	assert.True(t, reloaded.LastClaimDate.Equal(baseTime.Add(25*time.Hour)))

	var record models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?",
		user.ID, models.TransactionTypeIncome).First(&record).Error)
	assert.Equal(t, float64(50), record.Amount)
	assert.Equal(t, models.TransactionStatusSuccess, record.Status)
}

func TestClaimIdempotentWithinWindow(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	firstClaim := baseTime.Add(25 * time.Hour)
	_, err = Claim(db, user.ID, firstClaim)
	require.NoError(t, err)

	// One hour later nothing has accrued again.
	_, err = Claim(db, user.ID, firstClaim.Add(time.Hour))
	var ntc *NothingToClaimError
	require.ErrorAs(t, err, &ntc)
	assert.True(t, ntc.NextEligibleAt.Equal(firstClaim.Add(ClaimInterval)))

	assert.Equal(t, float64(450), reloadUser(t, db, user.ID).Balance)
	assert.Equal(t, int64(1), countTransactions(t, db, user.ID, models.TransactionTypeIncome))
}

func TestClaimWindowIsPerInvestment(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 2000, "")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)
	_, err = Invest(db, user.ID, product.ID, baseTime.Add(12*time.Hour))
	require.NoError(t, err)

	// 25h after the first purchase only the first investment pays.
	result, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, float64(50), result.Total)
	assert.Equal(t, 1, result.Claimed)

	// The second investment is eligible 24h after its own purchase.
	_, err = Claim(db, user.ID, baseTime.Add(26*time.Hour))
	var ntc *NothingToClaimError
	require.ErrorAs(t, err, &ntc)
	assert.True(t, ntc.NextEligibleAt.Equal(baseTime.Add(36*time.Hour)))
}

func TestClaimNothingWithNoInvestments(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	_, err := Claim(db, user.ID, baseTime)
	var ntc *NothingToClaimError
	require.ErrorAs(t, err, &ntc)
	assert.True(t, ntc.NextEligibleAt.IsZero())
}

func TestSnapshotSurvivesProductDeletion(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(product).Error)

	result, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, float64(50), result.Total)
	assert.Equal(t, float64(450), reloadUser(t, db, user.ID).Balance)
}

func TestSnapshotSurvivesProductEdit(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 30)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	product.DailyIncome = 500
	require.NoError(t, db.Save(product).Error)

	result, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, float64(50), result.Total)
}

func TestClaimStopsWhenLeasePaidOut(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 50, 2)

	_, err := Invest(db, user.ID, product.ID, baseTime)
	require.NoError(t, err)

	_, err = Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	_, err = Claim(db, user.ID, baseTime.Add(50*time.Hour))
	require.NoError(t, err)

	// Two daily payouts exhaust a two-day lease.
	_, err = Claim(db, user.ID, baseTime.Add(80*time.Hour))
	var ntc *NothingToClaimError
	require.ErrorAs(t, err, &ntc)
	assert.True(t, ntc.NextEligibleAt.IsZero())
	assert.Equal(t, float64(500), reloadUser(t, db, user.ID).Balance)
}

func TestClaimLegacyRowFallsBackToLiveProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 75, 30)

	// Legacy investment written before snapshots existed.
	legacy := models.Investment{
		UserID:        user.ID,
		ProductID:     product.ID,
		PurchaseDate:  baseTime,
		LastClaimDate: baseTime,
	}
	require.NoError(t, db.Create(&legacy).Error)

	result, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, float64(75), result.Total)
}

func TestClaimSkipsLegacyRowWithDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")
	product := createProduct(t, db, 600, 75, 30)

	legacy := models.Investment{
		UserID:        user.ID,
		ProductID:     product.ID,
		PurchaseDate:  baseTime,
		LastClaimDate: baseTime,
	}
	require.NoError(t, db.Create(&legacy).Error)
	require.NoError(t, db.Unscoped().Delete(product).Error)

	_, err := Claim(db, user.ID, baseTime.Add(25*time.Hour))
	var ntc *NothingToClaimError
	assert.ErrorAs(t, err, &ntc)
	assert.Equal(t, float64(1000), reloadUser(t, db, user.ID).Balance)
}
