package walletController

import (
	"errors"
	"log"
	"time"

	"vestpay/database"
	"vestpay/middleware"
	"vestpay/models"
	"vestpay/services"

	"github.com/gofiber/fiber/v2"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance":  user.Balance,
		"currency": "INR",
	})
}

// GetPaymentInfo returns the payment identity used for recharges
func GetPaymentInfo(c *fiber.Ctx) error {
	settings, err := services.GetSettings(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment info fetched!", fiber.Map{
		"upiId":     settings.UpiID,
		"qrCodeUrl": settings.QrCodeURL,
	})
}

// RechargeRequest records a top-up request. The balance stays
// untouched until an admin approves the pending transaction.
func RechargeRequest(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedRecharge").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	record, err := services.Recharge(database.Database.Db, userId, reqData.Amount, time.Now())
	if err != nil {
		return walletServiceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recharge request submitted for review!", record)
}

// WithdrawRequest debits the balance and leaves a pending withdrawal
// for admin review.
func WithdrawRequest(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedWithdraw").(*struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
		Detail string  `json:"detail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	record, err := services.Withdraw(database.Database.Db, userId, reqData.Amount,
		models.WithdrawalMethod(reqData.Method), reqData.Detail, time.Now())
	if err != nil {
		return walletServiceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Withdrawal request submitted for review!", record)
}

// GetWalletHistory returns user's transaction history
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // RECHARGE, WITHDRAWAL, INCOME, INVESTMENT, REFERRAL

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("user_id = ?", userId)

	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func walletServiceError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return middleware.ValidationErrorResponse(c, map[string]string{vErr.Field: vErr.Reason})
	case errors.Is(err, services.ErrBelowMinimum):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"Minimum withdrawal amount is 200!", nil)
	case errors.Is(err, services.ErrInsufficientBalance):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	default:
		log.Printf("Wallet operation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, try again!", nil)
	}
}
