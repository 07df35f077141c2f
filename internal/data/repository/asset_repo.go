package repository

import (
	"context"
	"fmt"

	"asset-registry/internal/data/entity"
	"asset-registry/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AssetRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction.
	WithTx(tx pgx.Tx) AssetRepository

	Create(ctx context.Context, asset *entity.Asset) error
	FindAll(ctx context.Context) ([]*entity.Asset, error)
	FindAllByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error)
	FindByID(ctx context.Context, id int64) (*entity.Asset, error)
	FindByIDAndOwner(ctx context.Context, id int64, userID uuid.UUID) (*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id int64) error
}

type assetRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAssetRepository(db database.Querier, log *zap.Logger) AssetRepository {
	return &assetRepository{
		db:  db,
		log: log.With(zap.String("repository", "asset")),
	}
}

func (ar *assetRepository) WithTx(tx pgx.Tx) AssetRepository {
	return &assetRepository{db: tx, log: ar.log}
}

const assetColumns = `id, name, quantity, brand, description, user_id, created_at, updated_at`

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var asset entity.Asset
	err := row.Scan(
		&asset.ID,
		&asset.Name,
		&asset.Quantity,
		&asset.Brand,
		&asset.Description,
		&asset.UserID,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// Create inserts a new asset and fills in the generated id.
func (ar *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (name, quantity, brand, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := ar.db.QueryRow(ctx, query,
		asset.Name,
		asset.Quantity,
		asset.Brand,
		asset.Description,
		asset.UserID,
		asset.CreatedAt,
		asset.UpdatedAt,
	).Scan(&asset.ID)

	if err != nil {
		ar.log.Error("Failed to create asset",
			zap.Error(err),
			zap.String("name", asset.Name),
			zap.String("user_id", asset.UserID.String()),
		)
		return fmt.Errorf("create asset %s: %w", asset.Name, err)
	}

	return nil
}

func (ar *assetRepository) findAll(ctx context.Context, query string, args ...any) ([]*entity.Asset, error) {
	rows, err := ar.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*entity.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset rows: %w", err)
	}

	return assets, nil
}

// FindAll returns every asset regardless of owner (administrator view).
func (ar *assetRepository) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY id`

	assets, err := ar.findAll(ctx, query)
	if err != nil {
		ar.log.Error("Failed to find all assets", zap.Error(err))
		return nil, fmt.Errorf("find all assets: %w", err)
	}

	return assets, nil
}

// FindAllByOwner returns only the assets owned by the given user.
func (ar *assetRepository) FindAllByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE user_id = $1 ORDER BY id`

	assets, err := ar.findAll(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to find assets by owner",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find assets by owner %s: %w", userID.String(), err)
	}

	return assets, nil
}

func (ar *assetRepository) FindByID(ctx context.Context, id int64) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	asset, err := scanAsset(ar.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find asset by ID",
			zap.Error(err),
			zap.Int64("asset_id", id),
		)
		return nil, fmt.Errorf("find asset by ID %d: %w", id, err)
	}

	return asset, nil
}

func (ar *assetRepository) FindByIDAndOwner(ctx context.Context, id int64, userID uuid.UUID) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND user_id = $2`

	asset, err := scanAsset(ar.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find asset by ID and owner",
			zap.Error(err),
			zap.Int64("asset_id", id),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find asset %d for owner %s: %w", id, userID.String(), err)
	}

	return asset, nil
}

// Update rewrites the four mutable fields. Owner and id never change.
func (ar *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET name = $2, quantity = $3, brand = $4, description = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := ar.db.Exec(ctx, query,
		asset.ID,
		asset.Name,
		asset.Quantity,
		asset.Brand,
		asset.Description,
		asset.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update asset",
			zap.Error(err),
			zap.Int64("asset_id", asset.ID),
		)
		return fmt.Errorf("update asset %d: %w", asset.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("asset %d not found", asset.ID)
	}

	return nil
}

func (ar *assetRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := ar.db.Exec(ctx, query, id)
	if err != nil {
		ar.log.Error("Failed to delete asset",
			zap.Error(err),
			zap.Int64("asset_id", id),
		)
		return fmt.Errorf("delete asset %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("asset %d not found", id)
	}

	ar.log.Info("Asset deleted", zap.Int64("asset_id", id))
	return nil
}
