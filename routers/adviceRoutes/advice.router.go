package adviceRoutes

import (
	adviceController "vestpay/controllers/advice"
	"vestpay/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdviceRoutes(app *fiber.App) {
	adviceGroup := app.Group("/advice")

	adviceGroup.Get("/", middleware.JWTMiddleware, adviceController.GetAdvice)
}
