package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string  `gorm:"not null" json:"username"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	Role         string  `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Balance      float64 `gorm:"not null;default:0" json:"balance"`
	ReferralCode string  `gorm:"uniqueIndex;not null" json:"referralCode"`
	ReferredBy   string  `gorm:"default:''" json:"referredBy,omitempty"`
	IsDeleted    bool    `gorm:"default:false" json:"-"`
}
