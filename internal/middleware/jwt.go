package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/utils"
)

// JWTAuth validates the token carried in the x-auth-token header and
// injects the authenticated user id into the request context.  The
// header name matches what the dashboard client sends; there is no
// Bearer prefix.  Protected handlers read the id via c.Get("user_id").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("x-auth-token")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "No token, authorization denied"})
			}
			userID, err := utils.ParseAPIToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Token is not valid"})
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
