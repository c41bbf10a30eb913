package services

import (
	"encoding/json"
	"errors"
	"time"

	"vestpay/models"
	"vestpay/utils"

	"gorm.io/gorm"
)

// ClaimInterval is how long an investment must accrue before its daily
// income becomes claimable again. Measured per investment, not per
// user, so staggered purchases settle on staggered schedules.
const ClaimInterval = 24 * time.Hour

// Invest purchases a product for the user: the price is debited, the
// product's commercial terms are frozen into the investment snapshot
// and an INVESTMENT transaction is written, all in one database
// transaction. The first purchase a user ever makes also pays the
// referral bonus to their referrer inside the same unit of work.
func Invest(db *gorm.DB, userID, productID uint, now time.Time) (*models.Investment, error) {
	var investment *models.Investment

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if user.Balance < product.Price {
			return ErrInsufficientBalance
		}

		if product.PurchaseLimit > 0 {
			var owned int64
			if err := tx.Model(&models.Investment{}).
				Where("user_id = ? AND product_id = ?", userID, productID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned >= int64(product.PurchaseLimit) {
				return &ValidationError{Field: "productId", Reason: "purchase limit reached for this product"}
			}
		}

		var priorInvestments int64
		if err := tx.Model(&models.Investment{}).
			Where("user_id = ?", userID).
			Count(&priorInvestments).Error; err != nil {
			return err
		}

		snapshot, err := json.Marshal(models.ProductSnapshot{
			Name:        product.Name,
			Price:       product.Price,
			DailyIncome: product.DailyIncome,
			Days:        product.Days,
			Image:       product.Image,
		})
		if err != nil {
			return err
		}

		investment = &models.Investment{
			UserID:        userID,
			ProductID:     product.ID,
			PurchaseDate:  now,
			LastClaimDate: now,
			ClaimedAmount: 0,
			Snapshot:      snapshot,
		}
		if err := tx.Create(investment).Error; err != nil {
			return err
		}

		record := models.Transaction{
			UserID:          userID,
			OrderID:         utils.NewOrderID(),
			Type:            models.TransactionTypeInvestment,
			Amount:          product.Price,
			Status:          models.TransactionStatusSuccess,
			TransactionDate: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		user.Balance -= product.Price
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// Referral fires exactly once, on the transition from zero to
		// one investment.
		if priorInvestments == 0 {
			if err := payReferralBonus(tx, &user, product.Price, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return investment, nil
}

// ClaimResult reports one aggregate income payout.
type ClaimResult struct {
	Total     float64   `json:"total"`
	Claimed   int       `json:"claimed"` // investments that paid out
	ClaimedAt time.Time `json:"claimedAt"`
}

// Claim collects daily income from every investment whose 24h window
// has elapsed, crediting the aggregate as a single INCOME transaction.
// Ineligible investments are left untouched. When nothing is eligible
// it fails with NothingToClaimError carrying the soonest time a claim
// will succeed.
func Claim(db *gorm.DB, userID uint, now time.Time) (*ClaimResult, error) {
	result := &ClaimResult{ClaimedAt: now}

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var investments []models.Investment
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&investments).Error; err != nil {
			return err
		}

		var nextEligible time.Time
		for i := range investments {
			inv := &investments[i]

			terms, err := ResolvePricing(tx, inv)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					// Legacy row without a snapshot whose product is
					// gone too: no authoritative terms, skip it.
					continue
				}
				return err
			}

			// An investment stops accruing once the lease has paid out
			// in full.
			if inv.ClaimedAmount >= terms.TotalRevenue() {
				continue
			}

			if now.Sub(inv.LastClaimDate) >= ClaimInterval {
				payout := terms.DailyIncome
				inv.LastClaimDate = now
				inv.ClaimedAmount += payout
				if err := tx.Save(inv).Error; err != nil {
					return err
				}
				result.Total += payout
				result.Claimed++
			} else {
				eligibleAt := inv.LastClaimDate.Add(ClaimInterval)
				if nextEligible.IsZero() || eligibleAt.Before(nextEligible) {
					nextEligible = eligibleAt
				}
			}
		}

		if result.Total <= 0 {
			return &NothingToClaimError{NextEligibleAt: nextEligible}
		}

		record := models.Transaction{
			UserID:          userID,
			OrderID:         utils.NewOrderID(),
			Type:            models.TransactionTypeIncome,
			Amount:          result.Total,
			Status:          models.TransactionStatusSuccess,
			TransactionDate: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		user.Balance += result.Total
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResolvePricing returns the authoritative payout terms for one
// investment: the frozen snapshot when present, otherwise a live
// product lookup for legacy rows written before snapshots existed.
// The two sources are never mixed field by field.
func ResolvePricing(tx *gorm.DB, inv *models.Investment) (models.ProductSnapshot, error) {
	if snap, ok := inv.TermsSnapshot(); ok {
		return snap, nil
	}

	var product models.Product
	if err := tx.First(&product, inv.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProductSnapshot{}, ErrNotFound
		}
		return models.ProductSnapshot{}, err
	}
	return models.ProductSnapshot{
		Name:        product.Name,
		Price:       product.Price,
		DailyIncome: product.DailyIncome,
		Days:        product.Days,
		Image:       product.Image,
	}, nil
}
