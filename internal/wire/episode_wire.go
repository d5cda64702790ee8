package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEpisode(
	r chi.Router,
	episodeHandler *adaptor.EpisodeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/api/v1/episodes/{id}", episodeHandler.GetEpisodeByID)

	r.Route("/api/v1/admin/episodes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", episodeHandler.CreateEpisode)
		r.Put("/{id}", episodeHandler.UpdateEpisode)
		r.Delete("/{id}", episodeHandler.DeleteEpisode)
	})
}
