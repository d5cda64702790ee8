package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGrade(
	r chi.Router,
	gradeHandler *adaptor.GradeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All grade operations require a valid session; per-grade
	// ownership checks live in the service layer.
	r.Route("/api/v1/grades", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", gradeHandler.SubmitGrade)
		r.Get("/me", gradeHandler.GetOwnGrades)
		r.Get("/user/{id}", gradeHandler.GetUserGrades)
		r.Get("/content/{type}/{id}/me", gradeHandler.GetOwnGradeForContent)
		r.Delete("/{id}", gradeHandler.DeleteGrade)
	})
}
