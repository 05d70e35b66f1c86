package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// identityKey returns a stable identifier for the current request,
// used by the rate limiter.  Authenticated requests are keyed by the
// user id JWTAuth stored in context, everything else by client IP.
func identityKey(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		if id, ok := v.(uint64); ok && id != 0 {
			return "user:" + strconv.FormatUint(id, 10)
		}
	}
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
