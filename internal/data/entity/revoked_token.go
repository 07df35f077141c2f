package entity

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken blacklists a single bearer token (by jti) until its natural
// expiry, after which the row is only kept until the next cleanup.
type RevokedToken struct {
	JTI       uuid.UUID `db:"jti"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	RevokedAt time.Time `db:"revoked_at"`
}
