package services

import (
	"errors"
	"strings"

	"vestpay/models"
	"vestpay/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	ReferralCode string // optional code of the referring user
}

// RegisterUser creates an account with a fresh unique referral code. A
// non-empty referral code must belong to an existing user, otherwise
// registration is refused outright.
func RegisterUser(db *gorm.DB, in RegisterInput, saltRound int) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.ReferralCode = strings.TrimSpace(in.ReferralCode)

	if in.Username == "" {
		return nil, &ValidationError{Field: "username", Reason: "username is required"}
	}
	if in.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "email is required"}
	}
	if len(in.Password) < 6 {
		return nil, &ValidationError{Field: "password", Reason: "password must be at least 6 characters"}
	}

	if err := db.Where("email = ?", in.Email).First(&models.User{}).Error; err == nil {
		return nil, &ValidationError{Field: "email", Reason: "email is already registered"}
	}

	if in.ReferralCode != "" {
		err := db.Where("referral_code = ? AND is_deleted = false", in.ReferralCode).
			First(&models.User{}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidReferralCode
			}
			return nil, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		Password:     string(hashed),
		Role:         "USER",
		ReferralCode: newUniqueReferralCode(db),
		ReferredBy:   in.ReferralCode,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies login credentials against the stored hash.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}
	return &user, nil
}

// Codes are random over a 32-character alphabet, so collisions are
// rare; the retry loop only exists to honor the uniqueness invariant.
func newUniqueReferralCode(db *gorm.DB) string {
	for {
		code := utils.GenerateReferralCode()
		if err := db.Where("referral_code = ?", code).First(&models.User{}).Error; err != nil {
			return code
		}
	}
}
