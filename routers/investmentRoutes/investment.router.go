package investmentRoutes

import (
	investmentController "vestpay/controllers/investment"
	"vestpay/middleware"
	investmentValidator "vestpay/validators/investment"

	"github.com/gofiber/fiber/v2"
)

func SetupInvestmentRoutes(app *fiber.App) {
	investmentGroup := app.Group("/investments")

	investmentGroup.Get("/", middleware.JWTMiddleware, investmentController.GetInvestments)
	investmentGroup.Post("/", investmentValidator.Invest(), middleware.JWTMiddleware, investmentController.CreateInvestment)
	investmentGroup.Post("/claim", middleware.JWTMiddleware, investmentController.ClaimIncome)
}
