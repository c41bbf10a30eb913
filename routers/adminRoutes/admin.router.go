package adminRoutes

import (
	adminController "vestpay/controllers/admin"
	"vestpay/middleware"
	adminValidator "vestpay/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/transactions/pending", adminController.PendingTransactions)
	adminGroup.Post("/transactions/resolve", adminValidator.ResolveTransaction(), adminController.ResolveTransaction)
	adminGroup.Get("/users", adminController.UserList)
	adminGroup.Put("/users", adminValidator.UpdateUser(), adminController.UpdateUser)
	adminGroup.Get("/settings", adminController.GetSettings)
	adminGroup.Put("/settings", adminValidator.UpdateSettings(), adminController.UpdateSettings)
	adminGroup.Post("/reset", adminController.ResetSystem)
	adminGroup.Get("/stats", adminController.LedgerStats)
}
