package session

import "errors"

// Internal error taxonomy for the session manager.  Callers of the
// manager never see these directly: expected failures surface as a
// false return plus a human-readable State.Err message.  The vars
// exist so tests and logs can tell apart what the user-facing
// message collapses.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrDuplicateEmail  = errors.New("email is already in use")
	ErrValidation      = errors.New("validation error")
)

// User-facing messages tied to State.Err.  Kept as the exact strings
// the client rendered.
const (
	MsgReloginRequired    = "Authentication failed. Please log in again."
	MsgInvalidCredentials = "Invalid Credentials"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgPasswordTooShort   = "Password must be at least 8 characters long"
	MsgEmailInUse         = "Email is already in use"
)
