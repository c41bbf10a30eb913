package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductSnapshot is the frozen copy of a product's commercial terms
// captured at purchase time. All payout math reads the snapshot, so
// editing or deleting the live product never changes what an existing
// investment earns.
type ProductSnapshot struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DailyIncome float64 `json:"dailyIncome"`
	Days        int     `json:"days"`
	Image       string  `json:"image"`
}

// TotalRevenue is the lifetime payout ceiling of the snapshotted terms.
func (s ProductSnapshot) TotalRevenue() float64 {
	return s.DailyIncome * float64(s.Days)
}

type Investment struct {
	gorm.Model
	UserID        uint           `gorm:"not null;index" json:"userId"`
	ProductID     uint           `gorm:"not null;index" json:"productId"`
	PurchaseDate  time.Time      `gorm:"not null" json:"purchaseDate"`
	LastClaimDate time.Time      `gorm:"not null" json:"lastClaimDate"`
	ClaimedAmount float64        `gorm:"not null;default:0" json:"claimedAmount"`
	Snapshot      datatypes.JSON `json:"snapshot"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}

// TermsSnapshot decodes the frozen product terms. ok is false for
// legacy rows written before snapshots existed; callers fall back to a
// live product lookup in that case.
func (i *Investment) TermsSnapshot() (ProductSnapshot, bool) {
	if len(i.Snapshot) == 0 {
		return ProductSnapshot{}, false
	}
	var snap ProductSnapshot
	if err := json.Unmarshal(i.Snapshot, &snap); err != nil {
		return ProductSnapshot{}, false
	}
	return snap, true
}
