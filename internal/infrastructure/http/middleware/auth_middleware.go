package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/pkg/jwt"
)

// ClaimsContextKey is the echo context key holding the verified *jwt.Claims
const ClaimsContextKey = "claims"

// EchoAuth returns an Echo middleware that requires a valid bearer token
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return errors.ErrUnauthenticated()
			}

			claims, err := manager.ValidateAccessToken(token)
			if err != nil {
				appErr := errors.ErrInvalidToken()
				appErr.Raw = err
				return appErr
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}

// GetClaims returns the verified claims of the request, if any
func GetClaims(c echo.Context) (*jwt.Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*jwt.Claims)
	return claims, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
