package utils // helper functions for API token creation and hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// APIToken is a signed HS256 JWT carried in the x-auth-token header
// on protected API calls, together with its expiry.  This is the
// real server token and is unrelated to the demo session token in
// internal/token.
type APIToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidAPIToken is returned when a presented token fails
// signature or claim checks.
var ErrInvalidAPIToken = errors.New("invalid api token")

// NewAPIToken builds and signs an HS256 JWT for a user.  Claims are
// subject (user id), name, email, expiration and issued-at.  The
// original deployment issued five-day tokens, so ttlDays is usually 5.
func NewAPIToken(secret string, userID uint64, name, email string, ttlDays int) (APIToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"name":  name,
		"email": email,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return APIToken{}, err
	}
	return APIToken{Token: signed, Exp: exp}, nil
}

// ParseAPIToken validates a raw token string and returns the user id
// from its subject claim.  Tokens signed with anything but HMAC are
// rejected.
func ParseAPIToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAPIToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidAPIToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidAPIToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidAPIToken
	}
	return uint64(sub), nil
}

// NewResetRaw returns a cryptographically secure random token used
// in password-reset links.  Only its SHA-256 hash is stored.
func NewResetRaw() (string, error) {
	return randomHex(32) // 32 bytes -> 64 hex chars
}

// HashResetRaw returns the SHA-256 hash of a raw reset token as a
// hex string.  Storing only the hash keeps stolen database rows
// from being redeemed.
func HashResetRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
