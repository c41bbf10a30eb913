package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the type of ledger transaction
type TransactionType string

const (
	TransactionTypeRecharge   TransactionType = "RECHARGE"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeIncome     TransactionType = "INCOME"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
	TransactionTypeReferral   TransactionType = "REFERRAL"
)

// TransactionStatus defines the status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusRejected TransactionStatus = "REJECTED"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// WithdrawalMethod is how a withdrawal is paid out
type WithdrawalMethod string

const (
	WithdrawalMethodUPI  WithdrawalMethod = "UPI"
	WithdrawalMethodBank WithdrawalMethod = "BANK"
)

// Transaction is an append-only ledger entry. Amount is immutable once
// written; the only mutation ever applied is the single status
// transition PENDING -> SUCCESS|REJECTED performed by admin review.
type Transaction struct {
	gorm.Model
	UserID  uint              `gorm:"not null;index" json:"userId"`
	OrderID string            `gorm:"type:varchar(64);uniqueIndex;not null" json:"orderId"`
	Type    TransactionType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount  float64           `gorm:"not null" json:"amount"`
	Status  TransactionStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	// Withdrawal details (WITHDRAWAL rows only). Fee is informational:
	// the balance debit is always the full Amount, the admin pays out
	// Amount - Fee.
	Fee              float64          `gorm:"default:0" json:"fee"`
	WithdrawalMethod WithdrawalMethod `gorm:"type:varchar(10)" json:"withdrawalMethod,omitempty"`
	WithdrawalDetail string           `gorm:"type:text" json:"withdrawalDetail,omitempty"`

	TransactionDate time.Time `gorm:"not null" json:"transactionDate"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
