package wire

import (
	"net/http"
	"time"

	"asset-registry/internal/adaptor"
	"asset-registry/internal/data/repository"
	"asset-registry/internal/usecase"
	"asset-registry/pkg/database"
	"asset-registry/pkg/middleware"
	"asset-registry/pkg/token"
	"asset-registry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, txm database.TxManager, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)

	service := usecase.NewService(repo, txm, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, tokens, logger)
	wireAsset(r, handler.Asset, repo, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
