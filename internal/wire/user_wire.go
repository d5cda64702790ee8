package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/v1/user/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", userHandler.GetProfile)
	})

	r.Route("/api/v1/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", userHandler.GetUsers)
		r.Put("/{id}/role", userHandler.UpdateRole)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
