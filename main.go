package main

import (
	"log"

	"vestpay/config"
	"vestpay/database"
	adminRoutes "vestpay/routers/adminRoutes"
	adviceRoutes "vestpay/routers/adviceRoutes"
	authRoutes "vestpay/routers/authRoutes"
	investmentRoutes "vestpay/routers/investmentRoutes"
	productRoutes "vestpay/routers/productRoutes"
	walletRoutes "vestpay/routers/walletRoutes"
	"vestpay/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	productRoutes.SetupProductRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	investmentRoutes.SetupInvestmentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	adviceRoutes.SetupAdviceRoutes(app)

	utils.InitializeLedgerScheduler(database.Database.Db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
