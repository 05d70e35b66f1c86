package repository

import (
	"context"
	"database/sql"
	"time"
)

// ResetTokenRepo stores password-reset tokens.  Only SHA-256 hashes
// of the raw token are persisted; a token is redeemable once and
// only before its expiry.
type ResetTokenRepo struct{ DB *sql.DB }

func NewResetTokenRepo(db *sql.DB) *ResetTokenRepo { return &ResetTokenRepo{DB: db} }

// Store saves a hashed reset token for a user.
func (r *ResetTokenRepo) Store(ctx context.Context, userID uint64, hash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO reset_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, hash, exp.UTC())
	return err
}

// Validate checks that a hashed token exists, is unused and not
// expired, and returns its owner.
func (r *ResetTokenRepo) Validate(ctx context.Context, hash string) (uint64, error) {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM reset_tokens WHERE token_hash=? AND used_at IS NULL AND expires_at > UTC_TIMESTAMP() LIMIT 1",
		hash).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrResetTokenInvalid
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Consume marks a hashed token as used so it cannot be redeemed
// twice.
func (r *ResetTokenRepo) Consume(ctx context.Context, hash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reset_tokens SET used_at=UTC_TIMESTAMP() WHERE token_hash=? AND used_at IS NULL",
		hash)
	return err
}
