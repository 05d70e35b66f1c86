// Package token implements the session token used by the demo auth
// flow.  The token is a plain delimiter-joined string carrying the
// user's email, display name and an issuance timestamp.  It is not
// signed: anybody holding the string can forge one, which is why it
// never protects a server-side resource (the HTTP API uses real
// JWTs, see internal/utils).
package token

import (
	"errors"
	"strconv"
	"strings"
)

// SchemeTag is the constant marker every session token starts with.
const SchemeTag = "user-data"

// delimiter joins the token segments.
const delimiter = ":"

var (
	// ErrMalformedToken is returned by Decode when the input does not
	// have the scheme tag or has fewer than four segments.
	ErrMalformedToken = errors.New("malformed session token")
	// ErrDelimiterInField is returned by Encode when the email or name
	// contains the delimiter character.  Emitting such a token would
	// produce a string that decodes to different claims.
	ErrDelimiterInField = errors.New("field contains token delimiter")
)

// Claims are the fields embedded in a session token.
type Claims struct {
	Email    string
	Name     string
	IssuedAt int64 // unix milliseconds
}

// Encode builds a session token of the form
// "user-data:<email>:<name>:<issuedAtMillis>".  Fields containing
// the delimiter are rejected rather than escaped.
func Encode(email, name string, issuedAt int64) (string, error) {
	if strings.Contains(email, delimiter) || strings.Contains(name, delimiter) {
		return "", ErrDelimiterInField
	}
	return strings.Join([]string{
		SchemeTag,
		email,
		name,
		strconv.FormatInt(issuedAt, 10),
	}, delimiter), nil
}

// Decode splits a session token back into its claims.  A token is
// decodable only if it starts with the scheme tag and has at least
// four delimiter-separated segments.  Extra segments beyond the
// fourth are ignored, matching how lenient the original parser was.
func Decode(tok string) (Claims, error) {
	parts := strings.Split(tok, delimiter)
	if len(parts) < 4 || parts[0] != SchemeTag {
		return Claims{}, ErrMalformedToken
	}
	issued, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	return Claims{Email: parts[1], Name: parts[2], IssuedAt: issued}, nil
}
