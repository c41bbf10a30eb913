package services

import (
	"errors"

	"vestpay/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UpdateUser is the admin override: direct balance and/or password
// replacement on one user. Nil fields are left untouched.
func UpdateUser(db *gorm.DB, userID uint, balance *float64, password *string, saltRound int) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if balance != nil {
		if *balance < 0 {
			return nil, &ValidationError{Field: "balance", Reason: "balance cannot be negative"}
		}
		user.Balance = *balance
	}
	if password != nil {
		if len(*password) < 6 {
			return nil, &ValidationError{Field: "password", Reason: "password must be at least 6 characters"}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), saltRound)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetSystem wipes every non-admin user together with their ledgers,
// removes all products and zeroes the admin's own balance and history.
// Settings and admin credentials survive the reset.
func ResetSystem(db *gorm.DB, adminID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		if err := tx.Where("id = ? AND role = ?", adminID, "ADMIN").First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var userIDs []uint
		if err := tx.Model(&models.User{}).
			Where("role <> ?", "ADMIN").
			Pluck("id", &userIDs).Error; err != nil {
			return err
		}

		if len(userIDs) > 0 {
			if err := tx.Unscoped().Where("user_id IN ?", userIDs).Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id IN ?", userIDs).Delete(&models.Investment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", userIDs).Delete(&models.User{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("user_id = ?", adminID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", adminID).Delete(&models.Investment{}).Error; err != nil {
			return err
		}

		admin.Balance = 0
		return tx.Save(&admin).Error
	})
}
