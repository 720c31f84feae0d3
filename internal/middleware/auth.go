// Package middleware contains HTTP middleware for the Buddies Cup API.
// Middleware sits between the HTTP server and route handlers — it runs on
// every request that passes through it, which makes it the right place for
// cross-cutting concerns like authentication.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmoran14/buddies-cup/internal/config"
)

// Roles carried in session tokens. There is no per-user identity — the whole
// trip signs in with a shared password, and the commissioner with a second one.
// Scores record which player they are FOR, not who typed them.
const (
	RoleViewer = "viewer" // Shared trip password: read everything, enter scores
	RoleAdmin  = "admin"  // Admin password: plus lock/unlock and all CRUD
)

// sessionTTL is how long an issued token stays valid. Long enough to cover a
// full trip weekend so nobody re-enters the password mid-round.
const sessionTTL = 96 * time.Hour

// Claims is the payload of our session tokens: standard JWT fields plus the
// role granted by whichever shared password was presented.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IssueToken signs a session token for the given role. Called by the login
// handler after it has checked the presented password.
func IssueToken(cfg *config.Config, role string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// Auth returns a Fiber middleware handler that validates the JWT from the
// "Authorization: Bearer <token>" header and stores the session role in the
// request context (c.Locals) for downstream handlers.
//
// Tokens are ours — signed with our own HMAC secret — so verification is a
// full signature check, and anything not HS256-signed with our key is rejected.
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		role := claims.Role
		if role != RoleAdmin {
			role = RoleViewer // Unknown or empty roles degrade to least privilege
		}
		c.Locals("role", role)

		return c.Next()
	}
}
