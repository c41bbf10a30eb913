package services

import (
	"errors"

	"vestpay/models"

	"gorm.io/gorm"
)

// SettingsInput carries a partial settings update; nil fields are left
// untouched.
type SettingsInput struct {
	UpiID                   *string
	QrCodeURL               *string
	ReferralBonusPercentage *float64
	WithdrawalFeePercentage *float64
}

// GetSettings returns the singleton settings record.
func GetSettings(db *gorm.DB) (*models.AppSettings, error) {
	var settings models.AppSettings
	if err := db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings mutates the singleton settings record in place.
func UpdateSettings(db *gorm.DB, in SettingsInput) (*models.AppSettings, error) {
	if in.ReferralBonusPercentage != nil && (*in.ReferralBonusPercentage < 0 || *in.ReferralBonusPercentage > 100) {
		return nil, &ValidationError{Field: "referralBonusPercentage", Reason: "must be between 0 and 100"}
	}
	if in.WithdrawalFeePercentage != nil && (*in.WithdrawalFeePercentage < 0 || *in.WithdrawalFeePercentage > 100) {
		return nil, &ValidationError{Field: "withdrawalFeePercentage", Reason: "must be between 0 and 100"}
	}

	settings, err := GetSettings(db)
	if err != nil {
		return nil, err
	}

	if in.UpiID != nil {
		settings.UpiID = *in.UpiID
	}
	if in.QrCodeURL != nil {
		settings.QrCodeURL = *in.QrCodeURL
	}
	if in.ReferralBonusPercentage != nil {
		settings.ReferralBonusPercentage = *in.ReferralBonusPercentage
	}
	if in.WithdrawalFeePercentage != nil {
		settings.WithdrawalFeePercentage = *in.WithdrawalFeePercentage
	}

	if err := db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
