package adviceController

import (
	"vestpay/middleware"
	"vestpay/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdvice returns a free-form tip from the external advice provider.
// Non-authoritative text only; this endpoint never reads or writes the
// ledger.
func GetAdvice(c *fiber.Ctx) error {
	topic := c.Query("topic", "investing")

	advice := utils.FetchAdvice(topic)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Advice fetched!", fiber.Map{
		"advice": advice,
	})
}
