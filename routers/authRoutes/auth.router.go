package authRoutes

import (
	authControllers "lingua/controllers/auth"
	"lingua/middleware"
	authValidators "lingua/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/change/login/password", middleware.JWTMiddleware, authControllers.ChangeLoginPassword)
}
