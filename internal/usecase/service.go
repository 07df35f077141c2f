package usecase

import (
	"asset-registry/internal/data/repository"
	"asset-registry/pkg/database"
	"asset-registry/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Asset AssetService
}

func NewService(repo *repository.Repository, txm database.TxManager, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, txm, tokens, log),
		Asset: NewAssetService(repo, txm, log),
	}
}
