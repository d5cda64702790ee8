package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Movie   MovieRepository
	Series  SeriesRepository
	Episode EpisodeRepository
	Grade   GradeRepository
	Trivia  TriviaRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Series:  NewSeriesRepository(db, log),
		Episode: NewEpisodeRepository(db, log),
		Grade:   NewGradeRepository(db, log),
		Trivia:  NewTriviaRepository(db, log),
	}
}
