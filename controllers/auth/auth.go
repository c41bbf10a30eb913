package authController

import (
	"errors"
	"log"

	"vestpay/config"
	"vestpay/database"
	"vestpay/middleware"
	"vestpay/services"

	"github.com/gofiber/fiber/v2"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Username     string `json:"username"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		ReferralCode string `json:"referralCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := services.RegisterUser(db, services.RegisterInput{
		Username:     reqData.Username,
		Email:        reqData.Email,
		Password:     reqData.Password,
		ReferralCode: reqData.ReferralCode,
	}, config.AppConfig.SaltRound)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReferralCode) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Referral code does not match any user!", nil)
		}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			if vErr.Field == "email" {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
			}
			return middleware.ValidationErrorResponse(c, map[string]string{vErr.Field: vErr.Reason})
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := services.Authenticate(db, reqData.Email, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No account found for this email!", nil)
		}
		if errors.Is(err, services.ErrWrongCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		log.Printf("Error during login: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
