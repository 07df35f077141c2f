package response

import (
	"time"

	"asset-registry/internal/data/entity"
)

type AssetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Brand       string    `json:"brand"`
	Description *string   `json:"desc,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AssetToResponse(asset *entity.Asset) *AssetResponse {
	return &AssetResponse{
		ID:          asset.ID,
		Name:        asset.Name,
		Quantity:    asset.Quantity,
		Brand:       asset.Brand,
		Description: asset.Description,
		UserID:      asset.UserID.String(),
		CreatedAt:   asset.CreatedAt,
		UpdatedAt:   asset.UpdatedAt,
	}
}

func AssetsToResponse(assets []*entity.Asset) []*AssetResponse {
	out := make([]*AssetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, AssetToResponse(asset))
	}
	return out
}
