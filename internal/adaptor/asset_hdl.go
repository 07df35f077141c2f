package adaptor

import (
	"encoding/json"
	"net/http"

	"asset-registry/internal/dto/request"
	"asset-registry/internal/usecase"
	"asset-registry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssetHandler struct {
	service usecase.AssetService
	log     *zap.Logger
}

func NewAssetHandler(service usecase.AssetService, log *zap.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		log:     log,
	}
}

// GetData handles GET /api/aset/getdata
func (h *AssetHandler) GetData(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	assets, err := h.service.List(r.Context(), identity)
	if err != nil {
		respondServiceError(w, h.log, "list assets", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_show_all_asset", utils.Payload{
		"aset": assets,
	})
}

// Show handles GET /api/aset/show/{id}
func (h *AssetHandler) Show(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "no_data_found")
		return
	}

	asset, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, h.log, "show asset", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_show_asset", utils.Payload{
		"aset": asset,
	})
}

// Insert handles POST /api/aset/insert
func (h *AssetHandler) Insert(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	var req request.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_request_body", nil)
		return
	}

	asset, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		respondServiceError(w, h.log, "insert asset", err)
		return
	}

	utils.ResponseCreated(w, "successfully_insert_asset", utils.Payload{
		"aset": asset,
	})
}

// Update handles PUT /api/aset/update/{id}
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "no_data_found")
		return
	}

	var req request.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_request_body", nil)
		return
	}

	asset, err := h.service.Update(r.Context(), identity, id, &req)
	if err != nil {
		respondServiceError(w, h.log, "update asset", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_update_asset", utils.Payload{
		"aset": asset,
	})
}

// Delete handles DELETE /api/aset/delete/{id}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "no_data_found")
		return
	}

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		respondServiceError(w, h.log, "delete asset", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_delete_asset", nil)
}
