package investmentController

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

// CreateInvestment purchases a product with wallet balance
func CreateInvestment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedInvest").(*struct {
		ProductID uint `json:"productId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	investment, err := services.Invest(database.Database.Db, userId, reqData.ProductID, time.Now())
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			return middleware.ValidationErrorResponse(c, map[string]string{vErr.Field: vErr.Reason})
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", nil)
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User or product not found!", nil)
		default:
			log.Printf("Investment failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, try again!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Investment successful!", investment)
}

// ClaimIncome collects daily income from all eligible investments
func ClaimIncome(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	result, err := services.Claim(database.Database.Db, userId, time.Now())
	if err != nil {
		var ntc *services.NothingToClaimError
		switch {
		case errors.As(err, &ntc):
			data := fiber.Map{}
			if !ntc.NextEligibleAt.IsZero() {
				data["nextEligibleAt"] = ntc.NextEligibleAt
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to claim yet!", data)
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		default:
			log.Printf("Claim failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, try again!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Income claimed!", result)
}

// GetInvestments lists the user's investments with their resolved
// payout terms and next-eligible claim time
func GetInvestments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var investments []models.Investment
	if err := db.Where("user_id = ?", userId).Order("id DESC").Find(&investments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch investments!", nil)
	}

	items := make([]fiber.Map, 0, len(investments))
	for i := range investments {
		inv := &investments[i]

		item := fiber.Map{
			"id":            inv.ID,
			"productId":     inv.ProductID,
			"purchaseDate":  inv.PurchaseDate,
			"lastClaimDate": inv.LastClaimDate,
			"claimedAmount": inv.ClaimedAmount,
			"nextClaimAt":   inv.LastClaimDate.Add(services.ClaimInterval),
		}

		terms, err := services.ResolvePricing(db, inv)
		if err == nil {
			status := "Active"
			if inv.ClaimedAmount >= terms.TotalRevenue() {
				status = "Completed"
			}
			item["terms"] = terms
			item["status"] = status
		} else {
			item["status"] = "Unpriceable"
		}
		items = append(items, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investments fetched!", items)
}
