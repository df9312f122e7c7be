package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/utils"
)

// AuthCookieName is the cookie the login callback sets and every
// authenticated request carries.
const AuthCookieName = "auth_token"

// SessionAuth returns an Echo middleware that validates the session JWT
// and injects the resolved identity into the request context. The token
// is read from the auth_token cookie, which is how the web frontend
// authenticates; an Authorization: Bearer header is accepted as a
// fallback for non-browser clients. Handlers downstream read the
// identity via c.Get("user_id") (uint64) and c.Get("role") (string).
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie(AuthCookieName); err == nil && ck.Value != "" {
				raw = ck.Value
			} else if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			claims, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("claims", claims)
			return next(c)
		}
	}
}
