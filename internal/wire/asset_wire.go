package wire

import (
	"asset-registry/internal/adaptor"
	"asset-registry/internal/data/repository"
	"asset-registry/pkg/middleware"
	"asset-registry/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAsset(
	r chi.Router,
	assetHandler *adaptor.AssetHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	auth := middleware.Auth(tokens, repo.User, repo.RevokedToken, log)

	r.Route("/api/aset", func(r chi.Router) {
		r.Use(auth)

		r.Get("/getdata", assetHandler.GetData)
		r.Get("/show/{id}", assetHandler.Show)
		r.Post("/insert", assetHandler.Insert)
		r.Put("/update/{id}", assetHandler.Update)
		r.Delete("/delete/{id}", assetHandler.Delete)
	})
}
