package repository

import (
	"context"
	"fmt"

	"asset-registry/internal/data/entity"
	"asset-registry/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RevokedTokenRepository interface {
	Revoke(ctx context.Context, token *entity.RevokedToken) error
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
	CleanExpired(ctx context.Context) error
}

type revokedTokenRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRevokedTokenRepository(db database.Querier, log *zap.Logger) RevokedTokenRepository {
	return &revokedTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "revoked_token")),
	}
}

// Revoke blacklists a token by jti. Revoking the same token twice is a no-op,
// which keeps logout idempotent.
func (r *revokedTokenRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (jti, user_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (jti) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		token.JTI,
		token.UserID,
		token.ExpiresAt,
		token.RevokedAt,
	)

	if err != nil {
		r.log.Error("Failed to revoke token",
			zap.Error(err),
			zap.String("jti", token.JTI.String()),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("revoke token %s: %w", token.JTI.String(), err)
	}

	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`

	var revoked bool
	if err := r.db.QueryRow(ctx, query, jti).Scan(&revoked); err != nil {
		r.log.Error("Failed to check token revocation",
			zap.Error(err),
			zap.String("jti", jti.String()),
		)
		return false, fmt.Errorf("check token revocation %s: %w", jti.String(), err)
	}

	return revoked, nil
}

// CleanExpired drops blacklist rows whose tokens can no longer authenticate
// anyway.
func (r *revokedTokenRepository) CleanExpired(ctx context.Context) error {
	query := `DELETE FROM revoked_tokens WHERE expires_at < NOW()`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired revoked tokens", zap.Error(err))
		return fmt.Errorf("clean expired revoked tokens: %w", err)
	}

	return nil
}
