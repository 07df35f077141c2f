package usecase

import (
	"context"
	"time"

	"asset-registry/internal/data/entity"
	"asset-registry/internal/data/repository"
	"asset-registry/internal/dto/request"
	"asset-registry/internal/dto/response"
	"asset-registry/pkg/database"
	"asset-registry/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AssetService interface {
	List(ctx context.Context, identity Identity) ([]*response.AssetResponse, error)
	Get(ctx context.Context, identity Identity, id int64) (*response.AssetResponse, error)
	Create(ctx context.Context, identity Identity, req *request.AssetRequest) (*response.AssetResponse, error)
	Update(ctx context.Context, identity Identity, id int64, req *request.AssetRequest) (*response.AssetResponse, error)
	Delete(ctx context.Context, identity Identity, id int64) error
}

type assetService struct {
	repo *repository.Repository
	txm  database.TxManager
	log  *zap.Logger
}

func NewAssetService(repo *repository.Repository, txm database.TxManager, log *zap.Logger) AssetService {
	return &assetService{
		repo: repo,
		txm:  txm,
		log:  log.With(zap.String("service", "asset")),
	}
}

// List returns every asset for administrators, and only the caller's own
// assets for everyone else.
func (s *assetService) List(ctx context.Context, identity Identity) ([]*response.AssetResponse, error) {
	var (
		assets []*entity.Asset
		err    error
	)

	if identity.IsAdministrator() {
		assets, err = s.repo.Asset.FindAll(ctx)
	} else {
		assets, err = s.repo.Asset.FindAllByOwner(ctx, identity.UserID)
	}
	if err != nil {
		s.log.Error("Failed to list assets",
			zap.Error(err), zap.String("user_id", identity.UserID.String()))
		return nil, err
	}

	return response.AssetsToResponse(assets), nil
}

func (s *assetService) Get(ctx context.Context, identity Identity, id int64) (*response.AssetResponse, error) {
	asset, err := s.resolve(ctx, s.repo.Asset, identity, id)
	if err != nil {
		return nil, err
	}

	return response.AssetToResponse(asset), nil
}

func (s *assetService) Create(ctx context.Context, identity Identity, req *request.AssetRequest) (*response.AssetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create asset validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	now := time.Now()
	asset := &entity.Asset{
		Name:        req.Name,
		Quantity:    *req.Quantity,
		Brand:       req.Brand,
		Description: req.Description,
		UserID:      identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.txm.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Asset.WithTx(tx).Create(ctx, asset)
	})
	if err != nil {
		s.log.Error("Failed to create asset",
			zap.Error(err), zap.String("user_id", identity.UserID.String()))
		return nil, err
	}

	s.log.Info("Asset created",
		zap.Int64("asset_id", asset.ID),
		zap.String("user_id", identity.UserID.String()))

	return response.AssetToResponse(asset), nil
}

func (s *assetService) Update(ctx context.Context, identity Identity, id int64, req *request.AssetRequest) (*response.AssetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update asset validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	var asset *entity.Asset
	err := s.txm.WithinTransaction(ctx, func(tx pgx.Tx) error {
		assets := s.repo.Asset.WithTx(tx)

		var err error
		asset, err = s.resolve(ctx, assets, identity, id)
		if err != nil {
			return err
		}

		// Only the four mutable fields change; owner and id are fixed.
		asset.Name = req.Name
		asset.Quantity = *req.Quantity
		asset.Brand = req.Brand
		asset.Description = req.Description
		asset.UpdatedAt = time.Now()

		return assets.Update(ctx, asset)
	})
	if err != nil {
		if err != ErrNotFound {
			s.log.Error("Failed to update asset",
				zap.Error(err), zap.Int64("asset_id", id))
		}
		return nil, err
	}

	s.log.Info("Asset updated",
		zap.Int64("asset_id", id),
		zap.String("user_id", identity.UserID.String()))

	return response.AssetToResponse(asset), nil
}

func (s *assetService) Delete(ctx context.Context, identity Identity, id int64) error {
	err := s.txm.WithinTransaction(ctx, func(tx pgx.Tx) error {
		assets := s.repo.Asset.WithTx(tx)

		asset, err := s.resolve(ctx, assets, identity, id)
		if err != nil {
			return err
		}

		return assets.Delete(ctx, asset.ID)
	})
	if err != nil {
		if err != ErrNotFound {
			s.log.Error("Failed to delete asset",
				zap.Error(err), zap.Int64("asset_id", id))
		}
		return err
	}

	s.log.Info("Asset deleted",
		zap.Int64("asset_id", id),
		zap.String("user_id", identity.UserID.String()))

	return nil
}

// resolve applies the ownership filter: administrators see any asset, other
// users only their own. A filtered-out asset is indistinguishable from a
// missing one.
func (s *assetService) resolve(ctx context.Context, assets repository.AssetRepository, identity Identity, id int64) (*entity.Asset, error) {
	var (
		asset *entity.Asset
		err   error
	)

	if identity.IsAdministrator() {
		asset, err = assets.FindByID(ctx, id)
	} else {
		asset, err = assets.FindByIDAndOwner(ctx, id, identity.UserID)
	}
	if err != nil {
		s.log.Error("Failed to resolve asset",
			zap.Error(err), zap.Int64("asset_id", id))
		return nil, err
	}
	if asset == nil {
		return nil, ErrNotFound
	}

	return asset, nil
}
