package services

import (
	"errors"
	"time"

	"vestpay/models"
	"vestpay/utils"

	"gorm.io/gorm"
)

// payReferralBonus credits the referrer of a first-time investor with
// a percentage of the purchase price, using the settings value current
// at the time of the triggering investment. A stale or empty referral
// code is silently ignored. Runs inside the investment's transaction
// so the referee's purchase and the referrer's credit persist as one
// unit.
func payReferralBonus(tx *gorm.DB, investor *models.User, price float64, now time.Time) error {
	if investor.ReferredBy == "" {
		return nil
	}

	var referrer models.User
	err := tx.Where("referral_code = ? AND is_deleted = false", investor.ReferredBy).
		First(&referrer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var settings models.AppSettings
	if err := tx.First(&settings).Error; err != nil {
		return err
	}

	bonus := price * settings.ReferralBonusPercentage / 100
	if bonus <= 0 {
		return nil
	}

	record := models.Transaction{
		UserID:          referrer.ID,
		OrderID:         utils.NewOrderID(),
		Type:            models.TransactionTypeReferral,
		Amount:          bonus,
		Status:          models.TransactionStatusSuccess,
		TransactionDate: now,
	}
	if err := tx.Create(&record).Error; err != nil {
		return err
	}

	referrer.Balance += bonus
	return tx.Save(&referrer).Error
}
