package adaptor

import (
	"errors"
	"net/http"

	"asset-registry/internal/data/entity"
	"asset-registry/internal/usecase"
	"asset-registry/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Asset *AssetHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Asset: NewAssetHandler(service.Asset, log),
	}
}

// identityFromContext rebuilds the authenticated identity set by the auth
// middleware.
func identityFromContext(r *http.Request) (usecase.Identity, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Identity{}, false
	}
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return usecase.Identity{}, false
	}
	return usecase.Identity{
		UserID: userID,
		Role:   entity.RoleFromInt(role),
	}, true
}

// respondServiceError maps service error kinds onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Any("errors", verr.Fields))
		utils.ResponseBadRequest(w, verr.Error(), verr.Fields)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotAuthenticated):
		log.Warn(operation+" failed - not authenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, usecase.ErrNotFound.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
