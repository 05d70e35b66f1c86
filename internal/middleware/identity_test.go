package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsegaye25/portfolio-api/internal/utils"
)

func TestIdentityKeyFallsBackToIP(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "ip:203.0.113.9", identityKey(c))
}

func TestIdentityKeyPrefersUserID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("user_id", uint64(7))

	assert.Equal(t, "user:7", identityKey(c))
}

// Protected routes run the auth guard before the limiter, so the
// limiter keys authenticated traffic per user rather than per IP.
func TestGuardThenLimiterSeesUserKey(t *testing.T) {
	tok, err := utils.NewAPIToken("secret", 7, "N", "n@e.co", 5)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	req.Header.Set("x-auth-token", tok.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var keyed string
	probe := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			keyed = identityKey(c)
			return next(c)
		}
	}
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, JWTAuth("secret")(probe(handler))(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user:7", keyed)
}
