package adminController

import (
	"errors"
	"log"

	"vestpay/config"
	"vestpay/database"
	"vestpay/middleware"
	"vestpay/models"
	"vestpay/services"
	"vestpay/utils"

	"github.com/gofiber/fiber/v2"
)

// PendingTransactions returns the admin review queue
func PendingTransactions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("status = ?", models.TransactionStatusPending)

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("transaction_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending transactions fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ResolveTransaction approves or rejects a pending recharge/withdrawal
func ResolveTransaction(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResolve").(*struct {
		UserID        uint   `json:"userId"`
		TransactionID uint   `json:"transactionId"`
		Action        string `json:"action"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	record, err := services.ResolveTransaction(db, reqData.UserID, reqData.TransactionID,
		services.ResolveAction(reqData.Action))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPending):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction is already resolved!", nil)
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
		default:
			log.Printf("Error resolving transaction: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve transaction!", nil)
		}
	}

	// Notify the user, best effort.
	var user models.User
	if err := db.First(&user, reqData.UserID).Error; err == nil {
		go func(u models.User, r models.Transaction) {
			approved := r.Status == models.TransactionStatusSuccess
			if err := utils.SendTransactionResolvedEmail(u.Email, u.Username, string(r.Type), r.Amount, approved); err != nil {
				log.Printf("Error sending resolution email: %v", err)
			}
		}(user, *record)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction resolved!", record)
}

// UserList returns all non-admin users
func UserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var users []models.User
	var total int64

	if err := db.
		Where("is_deleted = ? AND role != ?", false, "ADMIN").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	db.Model(&models.User{}).
		Where("is_deleted = ? AND role != ?", false, "ADMIN").
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateUser is the direct admin override of balance and/or password
func UpdateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateUser").(*struct {
		UserID   uint     `json:"userId"`
		Balance  *float64 `json:"balance"`
		Password *string  `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.UpdateUser(database.Database.Db, reqData.UserID,
		reqData.Balance, reqData.Password, config.AppConfig.SaltRound)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			return middleware.ValidationErrorResponse(c, map[string]string{vErr.Field: vErr.Reason})
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		default:
			log.Printf("Error updating user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated!", user)
}

// GetSettings returns the full settings record
func GetSettings(c *fiber.Ctx) error {
	settings, err := services.GetSettings(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched!", settings)
}

// UpdateSettings mutates the settings singleton
func UpdateSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateSettings").(*struct {
		UpiID                   *string  `json:"upiId"`
		QrCodeURL               *string  `json:"qrCodeUrl"`
		ReferralBonusPercentage *float64 `json:"referralBonusPercentage"`
		WithdrawalFeePercentage *float64 `json:"withdrawalFeePercentage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settings, err := services.UpdateSettings(database.Database.Db, services.SettingsInput{
		UpiID:                   reqData.UpiID,
		QrCodeURL:               reqData.QrCodeURL,
		ReferralBonusPercentage: reqData.ReferralBonusPercentage,
		WithdrawalFeePercentage: reqData.WithdrawalFeePercentage,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, map[string]string{vErr.Field: vErr.Reason})
		}
		log.Printf("Error updating settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated!", settings)
}

// ResetSystem wipes all non-admin users and all products, and zeroes
// the admin's own ledger
func ResetSystem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	if err := services.ResetSystem(database.Database.Db, userId); err != nil {
		log.Printf("Error resetting system: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset system!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "System reset complete!", nil)
}

// LedgerStats aggregates transaction totals per type and status
func LedgerStats(c *fiber.Ctx) error {
	db := database.Database.Db

	type statRow struct {
		Type   models.TransactionType   `json:"type"`
		Status models.TransactionStatus `json:"status"`
		Count  int64                    `json:"count"`
		Total  float64                  `json:"total"`
	}

	var rows []statRow
	if err := db.Model(&models.Transaction{}).
		Select("type, status, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Group("type, status").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var userCount int64
	db.Model(&models.User{}).Where("is_deleted = ? AND role != ?", false, "ADMIN").Count(&userCount)

	var investmentCount int64
	db.Model(&models.Investment{}).Count(&investmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ledger stats fetched!", fiber.Map{
		"transactions": rows,
		"users":        userCount,
		"investments":  investmentCount,
	})
}
