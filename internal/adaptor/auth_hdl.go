package adaptor

import (
	"encoding/json"
	"net/http"

	"asset-registry/internal/dto/request"
	"asset-registry/internal/usecase"
	"asset-registry/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_request_body", nil)
		return
	}

	user, tok, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, "register", err)
		return
	}

	utils.ResponseCreated(w, "successfully_registered", utils.Payload{
		"user":  user,
		"token": tok,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_request_body", nil)
		return
	}

	tok, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, "login", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_logged_in", utils.Payload{
		"token": tok,
	})
}

// Logout handles GET /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	jti, ok := utils.GetTokenIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "token_invalid")
		return
	}

	if err := h.service.Logout(r.Context(), identity, jti); err != nil {
		respondServiceError(w, h.log, "logout", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_logged_out", nil)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "user_not_found")
		return
	}

	user, err := h.service.Profile(r.Context(), identity)
	if err != nil {
		respondServiceError(w, h.log, "get profile", err)
		return
	}

	utils.ResponseSuccess(w, "successfully_get_user", utils.Payload{
		"user": user,
	})
}
