package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fada-app/fada-auth/api/http/presenter"
	"github.com/fada-app/fada-auth/pkg/auth"
	jwtmw "github.com/fada-app/fada-auth/pkg/security/jwt"
)

// UserHandler serves the guarded endpoints that act on the identity the
// session guard resolved.
type UserHandler struct {
	useCase auth.AuthUseCase
}

func NewUserHandler(useCase auth.AuthUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// Painel echoes the authenticated identity without touching the store.
// @Summary Panel greeting
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /painel [get]
func (h *UserHandler) Painel(c *fiber.Ctx) error {
	userID, ok := c.Locals(jwtmw.LocalsUserID).(string)
	if !ok || userID == "" {
		return presenter.Error(c, http.StatusUnauthorized, "missing authenticated identity")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": fmt.Sprintf("welcome, user %s", userID),
		"userId":  userID,
	})
}

// Validate re-queries the store for the token's subject. A still-valid token
// for a deactivated or deleted account fails here with 404.
// @Summary Validate session against the user store
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /validate [get]
func (h *UserHandler) Validate(c *fiber.Ctx) error {
	subject, ok := c.Locals(jwtmw.LocalsUserID).(string)
	if !ok || subject == "" {
		return presenter.Error(c, http.StatusUnauthorized, "missing authenticated identity")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid token subject")
	}

	user, err := h.useCase.Validate(c.Context(), userID)
	if err != nil {
		return presenter.DomainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "user authenticated successfully",
		"email":   user.Email,
	})
}
