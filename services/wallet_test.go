package services

import (
	"testing"
	"time"

	"vestpay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRechargeCreditsOnlyOnApproval(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 0, "")

	record, err := Recharge(db, user.ID, 500, baseTime)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, record.Status)

	// Creating the request never changes the balance.
	assert.Equal(t, float64(0), reloadUser(t, db, user.ID).Balance)

	resolved, err := ResolveTransaction(db, user.ID, record.ID, ResolveApprove)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSuccess, resolved.Status)
	assert.Equal(t, float64(500), reloadUser(t, db, user.ID).Balance)
}

func TestRechargeRejectionHasNoBalanceEffect(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 100, "")

	record, err := Recharge(db, user.ID, 500, baseTime)
	require.NoError(t, err)

	resolved, err := ResolveTransaction(db, user.ID, record.ID, ResolveReject)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, resolved.Status)
	assert.Equal(t, float64(100), reloadUser(t, db, user.ID).Balance)
}

func TestWithdrawDebitsUpFrontAndRefundsOnReject(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	record, err := Withdraw(db, user.ID, 300, models.WithdrawalMethodUPI, "user@upi", baseTime)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, record.Status)
	assert.Equal(t, float64(700), reloadUser(t, db, user.ID).Balance)

	resolved, err := ResolveTransaction(db, user.ID, record.ID, ResolveReject)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, resolved.Status)

	// Net zero across create + reject.
	assert.Equal(t, float64(1000), reloadUser(t, db, user.ID).Balance)
}

func TestWithdrawApprovalHasNoFurtherBalanceEffect(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	record, err := Withdraw(db, user.ID, 300, models.WithdrawalMethodBank, "ACC 0001 IFSC XYZ", baseTime)
	require.NoError(t, err)

	resolved, err := ResolveTransaction(db, user.ID, record.ID, ResolveApprove)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSuccess, resolved.Status)
	assert.Equal(t, float64(700), reloadUser(t, db, user.ID).Balance)
}

func TestWithdrawBelowMinimum(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	_, err := Withdraw(db, user.ID, 100, models.WithdrawalMethodUPI, "user@upi", baseTime)
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Equal(t, float64(1000), reloadUser(t, db, user.ID).Balance)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	_, err := Withdraw(db, user.ID, 1200, models.WithdrawalMethodUPI, "user@upi", baseTime)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, float64(1000), reloadUser(t, db, user.ID).Balance)
	assert.Zero(t, countTransactions(t, db, user.ID, models.TransactionTypeWithdrawal))
}

func TestWithdrawValidatesInput(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	var vErr *ValidationError

	_, err := Withdraw(db, user.ID, 0, models.WithdrawalMethodUPI, "user@upi", baseTime)
	assert.ErrorAs(t, err, &vErr)

	_, err = Withdraw(db, user.ID, 300, "PAYPAL", "someone", baseTime)
	assert.ErrorAs(t, err, &vErr)

	_, err = Withdraw(db, user.ID, 300, models.WithdrawalMethodUPI, "   ", baseTime)
	assert.ErrorAs(t, err, &vErr)
}

func TestWithdrawRecordsFeeWithoutChangingDebit(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	fee := 10.0
	_, err := UpdateSettings(db, SettingsInput{WithdrawalFeePercentage: &fee})
	require.NoError(t, err)

	record, err := Withdraw(db, user.ID, 300, models.WithdrawalMethodUPI, "user@upi", baseTime)
	require.NoError(t, err)
	assert.Equal(t, float64(30), record.Fee)
	assert.Equal(t, float64(300), record.Amount)
	assert.Equal(t, float64(700), reloadUser(t, db, user.ID).Balance)
}

func TestRechargeValidatesAmount(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 0, "")

	var vErr *ValidationError
	_, err := Recharge(db, user.ID, 0, baseTime)
	assert.ErrorAs(t, err, &vErr)
	_, err = Recharge(db, user.ID, -50, baseTime)
	assert.ErrorAs(t, err, &vErr)
}

func TestResolveIsTerminal(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	record, err := Withdraw(db, user.ID, 300, models.WithdrawalMethodUPI, "user@upi", baseTime)
	require.NoError(t, err)

	_, err = ResolveTransaction(db, user.ID, record.ID, ResolveApprove)
	require.NoError(t, err)

	// A resolved transaction can never transition again.
	_, err = ResolveTransaction(db, user.ID, record.ID, ResolveReject)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, float64(700), reloadUser(t, db, user.ID).Balance)
}

func TestResolveUnknownTransaction(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	_, err := ResolveTransaction(db, user.ID, 9999, ResolveApprove)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveRejectsUnknownAction(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 1000, "")

	record, err := Recharge(db, user.ID, 500, baseTime)
	require.NoError(t, err)

	var vErr *ValidationError
	_, err = ResolveTransaction(db, user.ID, record.ID, "cancel")
	assert.ErrorAs(t, err, &vErr)
}

func TestBalanceStaysNonNegativeAcrossOperations(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, 0, "")
	product := createProduct(t, db, 600, 50, 30)

	// Every failing operation must leave the balance untouched.
	_, err := Withdraw(db, user.ID, 300, models.WithdrawalMethodUPI, "user@upi", baseTime)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	_, err = Invest(db, user.ID, product.ID, baseTime)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	record, err := Recharge(db, user.ID, 600, baseTime)
	require.NoError(t, err)
	_, err = ResolveTransaction(db, user.ID, record.ID, ResolveApprove)
	require.NoError(t, err)

	_, err = Invest(db, user.ID, product.ID, baseTime.Add(time.Minute))
	require.NoError(t, err)

	final := reloadUser(t, db, user.ID)
	assert.GreaterOrEqual(t, final.Balance, float64(0))
	assert.Equal(t, float64(0), final.Balance)
}
