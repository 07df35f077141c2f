package repository

import (
	"asset-registry/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Asset        AssetRepository
	RevokedToken RevokedTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Asset:        NewAssetRepository(db, log),
		RevokedToken: NewRevokedTokenRepository(db, log),
	}
}
