package walletValidator

import (
	"strings"

	"vestpay/middleware"

	"github.com/gofiber/fiber/v2"
)

// Recharge validates a top-up request
func Recharge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecharge", reqData)
		return c.Next()
	}
}

// Withdraw validates a withdrawal request
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
			Method string  `json:"method"` // UPI or BANK
			Detail string  `json:"detail"` // destination: UPI id or bank account details
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		method := strings.ToUpper(strings.TrimSpace(reqData.Method))
		if method != "UPI" && method != "BANK" {
			errors["method"] = "Method must be UPI or BANK!"
		}
		if strings.TrimSpace(reqData.Detail) == "" {
			errors["detail"] = "Withdrawal destination is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Method = method
		c.Locals("validatedWithdraw", reqData)
		return c.Next()
	}
}
