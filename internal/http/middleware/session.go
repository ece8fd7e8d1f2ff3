package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie is the cookie carrying the session token.
	SessionCookie = "session"
	// UserIDLocalKey is the context locals key holding the authenticated
	// user's id. Absent for anonymous callers.
	UserIDLocalKey = "user_id"
)

// SessionClaims are the JWT claims of a session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionOptional authenticates the caller when a session token is present
// (cookie or Authorization bearer) and continues anonymously otherwise.
// Invalid tokens are treated as anonymous, not rejected; authorization
// happens downstream and fails closed there.
func SessionOptional(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := userIDFromToken(c, secret); ok {
			c.Locals(UserIDLocalKey, userID)
		}
		return c.Next()
	}
}

// SessionRequired rejects callers without a valid session token with 401.
func SessionRequired(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := userIDFromToken(c, secret)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		c.Locals(UserIDLocalKey, userID)
		return c.Next()
	}
}

// InternalAuth gates an endpoint behind the internal service credential
// passed as a bearer token. An empty configured key disables the endpoint.
func InternalAuth(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(auth, "Bearer ")
		if apiKey == "" || token == auth || token != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id from context locals, or "" for
// anonymous callers.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocalKey).(string); ok {
		return v
	}
	return ""
}

func userIDFromToken(c *fiber.Ctx, secret []byte) (string, bool) {
	raw := c.Cookies(SessionCookie)
	if raw == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if after := strings.TrimPrefix(auth, "Bearer "); after != auth {
			raw = after
		}
	}
	if raw == "" || len(secret) == 0 {
		return "", false
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
