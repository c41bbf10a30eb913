package services

import (
	"errors"
	"strings"
	"time"

	"vestpay/models"
	"vestpay/utils"

	"gorm.io/gorm"
)

// MinWithdrawalAmount is the hard floor for withdrawal requests.
const MinWithdrawalAmount = 200

// Recharge records a top-up request as a pending transaction. Balance
// is only credited when an admin approves it — unverified money never
// inflates the spendable balance.
func Recharge(db *gorm.DB, userID uint, amount float64, now time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "amount must be greater than 0"}
	}

	var record *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = false", userID).First(&models.User{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		record = &models.Transaction{
			UserID:          userID,
			OrderID:         utils.NewOrderID(),
			Type:            models.TransactionTypeRecharge,
			Amount:          amount,
			Status:          models.TransactionStatusPending,
			TransactionDate: now,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Withdraw debits the balance up front and leaves a pending withdrawal
// for admin review. The optimistic debit locks the funds out of the
// spendable balance while the request is reviewed; a rejection refunds
// it. The withdrawal fee is recorded on the transaction but never
// changes the size of the debit.
func Withdraw(db *gorm.DB, userID uint, amount float64, method models.WithdrawalMethod, detail string, now time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "amount must be greater than 0"}
	}
	if method != models.WithdrawalMethodUPI && method != models.WithdrawalMethodBank {
		return nil, &ValidationError{Field: "method", Reason: "method must be UPI or BANK"}
	}
	if strings.TrimSpace(detail) == "" {
		return nil, &ValidationError{Field: "detail", Reason: "withdrawal destination is required"}
	}
	if amount < MinWithdrawalAmount {
		return nil, ErrBelowMinimum
	}

	var record *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if user.Balance < amount {
			return ErrInsufficientBalance
		}

		var settings models.AppSettings
		if err := tx.First(&settings).Error; err != nil {
			return err
		}
		fee := amount * settings.WithdrawalFeePercentage / 100

		record = &models.Transaction{
			UserID:           userID,
			OrderID:          utils.NewOrderID(),
			Type:             models.TransactionTypeWithdrawal,
			Amount:           amount,
			Status:           models.TransactionStatusPending,
			Fee:              fee,
			WithdrawalMethod: method,
			WithdrawalDetail: strings.TrimSpace(detail),
			TransactionDate:  now,
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		user.Balance -= amount
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ResolveAction is the admin verdict on a pending transaction.
type ResolveAction string

const (
	ResolveApprove ResolveAction = "approve"
	ResolveReject  ResolveAction = "reject"
)

// ResolveTransaction applies the admin review state machine: a pending
// transaction moves to SUCCESS or REJECTED exactly once. Approving a
// recharge credits the balance; rejecting a withdrawal refunds the
// debit taken when the request was created. The other two cells of the
// effects table leave the balance alone.
func ResolveTransaction(db *gorm.DB, userID, txID uint, action ResolveAction) (*models.Transaction, error) {
	if action != ResolveApprove && action != ResolveReject {
		return nil, &ValidationError{Field: "action", Reason: "action must be approve or reject"}
	}

	var record models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", txID, userID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if record.Status != models.TransactionStatusPending {
			return ErrNotPending
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		switch action {
		case ResolveApprove:
			record.Status = models.TransactionStatusSuccess
			if record.Type == models.TransactionTypeRecharge {
				user.Balance += record.Amount
			}
			// Approved withdrawals have no further effect: the debit
			// already happened when the request was created.
		case ResolveReject:
			record.Status = models.TransactionStatusRejected
			if record.Type == models.TransactionTypeWithdrawal {
				user.Balance += record.Amount
			}
		}

		if err := tx.Save(&record).Error; err != nil {
			return err
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
