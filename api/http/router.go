package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/fada-app/fada-auth/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The guard middleware
// protects only the routes that require an authenticated identity.
func Register(app *fiber.App, origin string, auth *handlers.AuthHandler, user *handlers.UserHandler, health *handlers.HealthHandler, guard fiber.Handler) {
	// Single trusted front-end origin, with credentials for the session cookie.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fada is listening ★")
	})

	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/signup", auth.SignUp)
	api.Post("/signin", auth.SignIn)
	api.Post("/signout", auth.SignOut)

	api.Get("/painel", guard, user.Painel)
	api.Get("/validate", guard, user.Validate)
}
