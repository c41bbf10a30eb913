package models

import (
	"gorm.io/gorm"
)

// Product is a catalog entry. TotalRevenue is always computed server
// side as DailyIncome * Days; it is never accepted from a request.
// Deleting a product only removes it from the catalog — existing
// investments keep earning from their frozen snapshots.
type Product struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	Price         float64 `gorm:"not null" json:"price"`
	DailyIncome   float64 `gorm:"not null" json:"dailyIncome"`
	Days          int     `gorm:"not null" json:"days"`
	TotalRevenue  float64 `gorm:"not null" json:"totalRevenue"`
	PurchaseLimit int     `gorm:"default:0" json:"purchaseLimit"` // 0 = unlimited
	Image         string  `gorm:"default:''" json:"image"`
}

func (Product) TableName() string {
	return "products"
}
