package models

import (
	"gorm.io/gorm"
)

// AppSettings is the single process-wide settings record. Exactly one
// row is seeded at startup; admin endpoints mutate it in place.
type AppSettings struct {
	gorm.Model
	UpiID                   string  `gorm:"default:''" json:"upiId"`
	QrCodeURL               string  `gorm:"default:''" json:"qrCodeUrl"`
	ReferralBonusPercentage float64 `gorm:"not null;default:5" json:"referralBonusPercentage"`
	WithdrawalFeePercentage float64 `gorm:"not null;default:0" json:"withdrawalFeePercentage"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
