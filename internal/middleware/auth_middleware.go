package middleware

import (
	"errors"
	"net/http"
	"strings"

	"MovieVaultAPI/internal/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// RequireAuth returns an Echo middleware that gates every request on a
// valid bearer token. The verifier is only consulted when the header
// actually carries a "Bearer <token>" value; on success the claims are
// attached to the request context and nothing else is mutated.
func RequireAuth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing authorization header"})
			}
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid authorization header"})
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": unauthorizedReason(err)})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// unauthorizedReason keeps the three verification failures
// distinguishable for clients and logs without exposing crypto
// details.
func unauthorizedReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, auth.ErrBadSignature):
		return "invalid token signature"
	default:
		return "malformed token"
	}
}

// GetClaims returns the verified claims attached by RequireAuth, or
// nil when the request never passed the gate.
func GetClaims(c echo.Context) *auth.Claims {
	v := c.Get(claimsContextKey)
	if v == nil {
		return nil
	}
	if cl, ok := v.(*auth.Claims); ok {
		return cl
	}
	return nil
}
