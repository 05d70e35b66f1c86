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

func runGuarded(t *testing.T, secret, token string) (*httptest.ResponseRecorder, interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID interface{}
	next := func(c echo.Context) error {
		gotUserID = c.Get("user_id")
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, JWTAuth(secret)(next)(c))
	return rec, gotUserID
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _ := runGuarded(t, "secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token, authorization denied")
}

func TestJWTAuthBadToken(t *testing.T) {
	rec, _ := runGuarded(t, "secret", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token is not valid")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAPIToken("other-secret", 7, "N", "n@e.co", 5)
	require.NoError(t, err)
	rec, _ := runGuarded(t, "secret", tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthSetsUserID(t *testing.T) {
	tok, err := utils.NewAPIToken("secret", 7, "N", "n@e.co", 5)
	require.NoError(t, err)
	rec, uid := runGuarded(t, "secret", tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(7), uid)
}
