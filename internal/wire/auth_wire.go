package wire

import (
	"asset-registry/internal/adaptor"
	"asset-registry/internal/data/repository"
	"asset-registry/pkg/middleware"
	"asset-registry/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	auth := middleware.Auth(tokens, repo.User, repo.RevokedToken, log)

	r.Route("/api/auth", func(r chi.Router) {
		// Public routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.With(auth).Get("/logout", authHandler.Logout)
		r.With(auth).Get("/profile", authHandler.Profile)
	})
}
