package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fada-app/fada-auth/pkg/auth"
)

// LocalsUserID is the fiber.Ctx locals key the guard stores the resolved
// user identifier under.
const LocalsUserID = "userId"

// TokenExtractor pulls a candidate session token out of a request. The
// transport (bearer header vs cookie) is the only thing implementations
// differ in; verification is shared.
type TokenExtractor interface {
	Extract(c *fiber.Ctx) (string, bool)
}

// BearerExtractor reads the Authorization header and requires the
// "Bearer <token>" scheme; anything else is treated as absent.
type BearerExtractor struct{}

func (BearerExtractor) Extract(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// CookieExtractor reads the named session cookie.
type CookieExtractor struct {
	Name string
}

func (e CookieExtractor) Extract(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(e.Name)
	if token == "" {
		return "", false
	}
	return token, true
}

// NewAuthMiddleware returns a Fiber middleware that guards protected routes.
// It extracts the session token via the given extractor, verifies it, and on
// success sets the subject (user id) into c.Locals(LocalsUserID). Every
// failure terminates the request with 401; the guard never falls open.
// It performs no database lookup: account staleness is a handler concern.
func NewAuthMiddleware(verifier auth.TokenVerifier, extractor TokenExtractor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := extractor.Extract(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing token"})
		}
		subject, err := verifier.Verify(c.Context(), tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(LocalsUserID, subject)
		return c.Next()
	}
}
