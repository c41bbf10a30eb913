package productValidator

import (
	"vestpay/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ProductPayload is the admin product create/update body. TotalRevenue
// is deliberately absent: the server computes it.
type ProductPayload struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	DailyIncome   float64 `json:"dailyIncome" validate:"required,gt=0"`
	Days          int     `json:"days" validate:"required,gt=0"`
	PurchaseLimit int     `json:"purchaseLimit" validate:"gte=0"`
	Image         string  `json:"image" validate:"omitempty,url"`
}

// Product validates an admin product create/update request
func Product() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProductPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}
