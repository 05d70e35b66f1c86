package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/config"
	"github.com/tsegaye25/portfolio-api/internal/repository"
	"github.com/tsegaye25/portfolio-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Resets *repository.ResetTokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, r *repository.ResetTokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Resets: r}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type forgotReq struct {
	Email string `json:"email"`
}
type resetReq struct {
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}
type userResp struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Login verifies email and password and returns a signed token.  The
// unknown-email and wrong-password cases collapse into the same
// response so the endpoint does not leak which emails exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Please include email and password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid Credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid Credentials"})
	}

	tok, err := utils.NewAPIToken(h.Cfg.JWTSecret, u.ID, u.Name, u.Email, h.Cfg.APITokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: tok.Token})
}

// Register creates a user and logs them in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Name is required"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Please include a valid email"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Please enter a password with 6 or more characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"msg": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}

	tok, err := utils.NewAPIToken(h.Cfg.JWTSecret, uid, req.Name, req.Email, h.Cfg.APITokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, tokenResp{Token: tok.Token})
}

// Me returns the authenticated user without the password hash.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(uint64)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, userResp{ID: u.ID, Name: u.Name, Email: u.Email, ProfileImage: u.ProfileImage})
}

// ForgotPassword mints a reset token and logs the reset link.  The
// response is the same generic 200 whether or not the email exists,
// to prevent account enumeration.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	generic := echo.Map{"msg": "If an account with that email exists, a reset link has been sent"}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return c.JSON(http.StatusOK, generic)
	}

	raw, err := utils.NewResetRaw()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	exp := time.Now().UTC().Add(time.Hour)
	if err := h.Resets.Store(ctx, u.ID, utils.HashResetRaw(raw), exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}

	// Mail delivery is out of scope; the link goes to the server log.
	log.Printf("password reset link for %s: %s/reset-password/%s", u.Email, h.Cfg.BaseURL, raw)

	return c.JSON(http.StatusOK, generic)
}

// ResetPassword redeems a reset token from the URL and sets the new
// password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	raw := c.Param("token")
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Please enter a password with 6 or more characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash := utils.HashResetRaw(raw)
	uid, err := h.Resets.Validate(ctx, hash)
	if err != nil {
		if err == repository.ErrResetTokenInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid or expired reset token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	if err := h.Users.UpdatePassword(ctx, uid, req.Password, h.Cfg.BcryptCost); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	_ = h.Resets.Consume(ctx, hash)

	return c.JSON(http.StatusOK, echo.Map{"msg": "Password has been reset"})
}
