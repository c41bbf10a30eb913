package walletRoutes

import (
	walletController "vestpay/controllers/wallet"
	"vestpay/middleware"
	walletValidator "vestpay/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetWalletBalance)
	walletGroup.Get("/payment-info", middleware.JWTMiddleware, walletController.GetPaymentInfo)
	walletGroup.Post("/recharge", walletValidator.Recharge(), middleware.JWTMiddleware, walletController.RechargeRequest)
	walletGroup.Post("/withdraw", walletValidator.Withdraw(), middleware.JWTMiddleware, walletController.WithdrawRequest)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletController.GetWalletHistory)
}
