package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fada-app/fada-auth/pkg/auth"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// DomainError maps a domain-layer error onto the HTTP taxonomy. Anything
// outside the known sentinels is logged and collapsed to a generic 500 so
// store or signing internals never leak to clients.
func DomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return Error(c, http.StatusBadRequest, "required fields are missing")
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return Error(c, http.StatusConflict, "user already exists")
	case errors.Is(err, auth.ErrNotFound):
		return Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return Error(c, http.StatusUnauthorized, "invalid credentials")
	default:
		slog.Error("unexpected error", "path", c.Path(), "error", err)
		return Error(c, http.StatusInternalServerError, "internal server error")
	}
}
