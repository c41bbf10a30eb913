package productController

import (
	"errors"

	"vestpay/database"
	"vestpay/middleware"
	"vestpay/models"
	productValidator "vestpay/validators/product"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListProducts returns the live catalog
func ListProducts(c *fiber.Ctx) error {
	db := database.Database.Db

	var products []models.Product
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched!", products)
}

// AddProduct creates a catalog entry (Admin only). TotalRevenue is
// computed server side.
func AddProduct(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProduct").(*productValidator.ProductPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	product := models.Product{
		Name:          reqData.Name,
		Price:         reqData.Price,
		DailyIncome:   reqData.DailyIncome,
		Days:          reqData.Days,
		TotalRevenue:  reqData.DailyIncome * float64(reqData.Days),
		PurchaseLimit: reqData.PurchaseLimit,
		Image:         reqData.Image,
	}
	if err := db.Create(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product created!", product)
}

// UpdateProduct is the explicit admin edit. Existing investments keep
// their snapshots; only future purchases see the new terms.
func UpdateProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	reqData, ok := c.Locals("validatedProduct").(*productValidator.ProductPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch product!", nil)
	}

	product.Name = reqData.Name
	product.Price = reqData.Price
	product.DailyIncome = reqData.DailyIncome
	product.Days = reqData.Days
	product.TotalRevenue = reqData.DailyIncome * float64(reqData.Days)
	product.PurchaseLimit = reqData.PurchaseLimit
	product.Image = reqData.Image

	if err := db.Save(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated!", product)
}

// DeleteProduct removes a product from the live catalog (Admin only).
// Investments referencing it keep paying out from their snapshots.
func DeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch product!", nil)
	}

	if err := db.Delete(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted!", nil)
}
