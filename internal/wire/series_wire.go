package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeries(
	r chi.Router,
	seriesHandler *adaptor.SeriesHandler,
	episodeHandler *adaptor.EpisodeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/api/v1/series", seriesHandler.GetSeries)
	r.Get("/api/v1/series/{id}", seriesHandler.GetSeriesByID)
	r.Get("/api/v1/series/{id}/episodes", episodeHandler.GetEpisodesBySeries)

	r.Route("/api/v1/admin/series", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", seriesHandler.CreateSeries)
		r.Put("/{id}", seriesHandler.UpdateSeries)
		r.Delete("/{id}", seriesHandler.DeleteSeries)
	})
}
