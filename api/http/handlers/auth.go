package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fada-app/fada-auth/api/http/presenter"
	"github.com/fada-app/fada-auth/pkg/auth"
)

// SessionPolicy decides how signin hands the issued token to the client.
// CookieDelivery and the guard's extractor must agree on the transport.
type SessionPolicy struct {
	CookieDelivery bool
	CookieName     string
	TTL            time.Duration
	Secure         bool
}

type AuthHandler struct {
	useCase auth.AuthUseCase
	session SessionPolicy
}

func NewAuthHandler(useCase auth.AuthUseCase, session SessionPolicy) *AuthHandler {
	return &AuthHandler{useCase: useCase, session: session}
}

type signUpRequest struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	BirthDate string `json:"dataNascimento"`
	Phone     string `json:"telefone"`
	CPF       string `json:"cpf"`
	Sex       string `json:"sexo"`
}

// SignUp handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signUpRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	in := auth.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Sex:      req.Sex,
	}
	if req.BirthDate != "" {
		birth, err := parseDate(req.BirthDate)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid dataNascimento")
		}
		in.BirthDate = birth
	}

	user, err := h.useCase.SignUp(c.Context(), in)
	if err != nil {
		return presenter.DomainError(c, err)
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("user %s created successfully", user.Name),
		"name":    user.Name,
	})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// SignIn handles user login and session token delivery.
// @Summary Sign in
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signInRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.DomainError(c, err)
	}

	publicUser := fiber.Map{
		"id":    result.User.ID.String(),
		"nome":  result.User.Name,
		"email": result.User.Email,
	}

	if h.session.CookieDelivery {
		c.Cookie(&fiber.Cookie{
			Name:     h.session.CookieName,
			Value:    result.Token,
			MaxAge:   int(h.session.TTL.Seconds()),
			HTTPOnly: true,
			Secure:   h.session.Secure,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
		return presenter.JSON(c, http.StatusOK, fiber.Map{
			"message": fmt.Sprintf("user %s authenticated successfully", result.User.Name),
			"user":    publicUser,
		})
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"token": result.Token,
		"user":  publicUser,
	})
}

// SignOut clears the session cookie. Tokens are stateless, so there is no
// server-side session to destroy; this always succeeds.
// @Summary Sign out
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "signed out successfully"})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
