package productRoutes

import (
	productController "vestpay/controllers/products"
	"vestpay/middleware"
	productValidator "vestpay/validators/product"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productGroup := app.Group("/products")

	productGroup.Get("/", productController.ListProducts)

	// Admin routes
	adminGroup := productGroup.Group("/admin")
	adminGroup.Post("/", productValidator.Product(), middleware.JWTMiddleware, middleware.AdminOnly, productController.AddProduct)
	adminGroup.Put("/:id", productValidator.Product(), middleware.JWTMiddleware, middleware.AdminOnly, productController.UpdateProduct)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, productController.DeleteProduct)
}
