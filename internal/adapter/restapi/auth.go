package restapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/usecase/admin"
)

const claimsKey = "claims"

// BearerAuth rejects requests without a valid admin token.
func BearerAuth(tokens *admin.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return fail(c, http.StatusUnauthorized, "Authorization token is required")
			}
			claims, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				return fail(c, http.StatusUnauthorized, "Invalid or expired token")
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}
