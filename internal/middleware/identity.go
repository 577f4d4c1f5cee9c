package middleware

// identity.go provides the user extraction helper shared by the cache
// and rate-limit key builders.  JWTAuth stores the subject claim under
// "user_id"; anonymous requests fall back to "guest".

import (
	"github.com/labstack/echo/v4"
)

// userID extracts the authenticated subject from the Echo context.  It
// returns "guest" when no user is authenticated.
func userID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return "guest"
}
