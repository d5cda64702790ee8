package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrivia(
	r chi.Router,
	triviaHandler *adaptor.TriviaHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/api/v1/trivia/content/{type}/{id}", triviaHandler.GetTriviaForContent)

	r.Route("/api/v1/admin/trivia", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", triviaHandler.CreateTrivia)
		r.Put("/{id}", triviaHandler.UpdateTrivia)
		r.Delete("/{id}", triviaHandler.DeleteTrivia)
	})
}
