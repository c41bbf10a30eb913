package adminValidator

import (
	"strings"

	"vestpay/middleware"

	"github.com/gofiber/fiber/v2"
)

// ResolveTransaction validates an admin transaction review request
func ResolveTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID        uint   `json:"userId"`
			TransactionID uint   `json:"transactionId"`
			Action        string `json:"action"` // approve or reject
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.TransactionID == 0 {
			errors["transactionId"] = "Transaction ID is required!"
		}
		action := strings.ToLower(strings.TrimSpace(reqData.Action))
		if action != "approve" && action != "reject" {
			errors["action"] = "Action must be approve or reject!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Action = action
		c.Locals("validatedResolve", reqData)
		return c.Next()
	}
}

// UpdateUser validates an admin user override request
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint     `json:"userId"`
			Balance  *float64 `json:"balance"`
			Password *string  `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.Balance == nil && reqData.Password == nil {
			errors["body"] = "Provide a balance or a password to update!"
		}
		if reqData.Balance != nil && *reqData.Balance < 0 {
			errors["balance"] = "Balance cannot be negative!"
		}
		if reqData.Password != nil && len(*reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

// UpdateSettings validates an admin settings update request
func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UpiID                   *string  `json:"upiId"`
			QrCodeURL               *string  `json:"qrCodeUrl"`
			ReferralBonusPercentage *float64 `json:"referralBonusPercentage"`
			WithdrawalFeePercentage *float64 `json:"withdrawalFeePercentage"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ReferralBonusPercentage != nil &&
			(*reqData.ReferralBonusPercentage < 0 || *reqData.ReferralBonusPercentage > 100) {
			errors["referralBonusPercentage"] = "Must be between 0 and 100!"
		}
		if reqData.WithdrawalFeePercentage != nil &&
			(*reqData.WithdrawalFeePercentage < 0 || *reqData.WithdrawalFeePercentage > 100) {
			errors["withdrawalFeePercentage"] = "Must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateSettings", reqData)
		return c.Next()
	}
}
