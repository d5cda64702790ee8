package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Series  SeriesService
	Episode EpisodeService
	Grade   GradeService
	Trivia  TriviaService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Movie:   NewMovieService(repo, log),
		Series:  NewSeriesService(repo, log),
		Episode: NewEpisodeService(repo, log),
		Grade:   NewGradeService(repo, log),
		Trivia:  NewTriviaService(repo, log),
	}
}
