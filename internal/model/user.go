package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name shown on the public profile.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  ProfileImage – data-URI or URL of the profile picture (may be empty).
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	ProfileImage string    // users.profile_image
	CreatedAt    time.Time // users.created_at
}

// ResetToken models an entry in the `reset_tokens` table.  Each
// reset token belongs to a user and carries an expiry so that a
// forgotten-password link stops working after an hour.  The plain
// token is never stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  UsedAt    – when the token was consumed (null if still unused).
//  CreatedAt – timestamp of creation.
type ResetToken struct {
	ID        uint64     // reset_tokens.id
	UserID    uint64     // reset_tokens.user_id
	TokenHash string     // reset_tokens.token_hash
	ExpiresAt time.Time  // reset_tokens.expires_at
	UsedAt    *time.Time // reset_tokens.used_at (nullable)
	CreatedAt time.Time  // reset_tokens.created_at
}
