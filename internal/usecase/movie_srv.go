package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/listing"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movies = listing.Filter(movies, req.Search)
	if req.Genre != "" {
		var byGenre []*entity.Movie
		for _, movie := range movies {
			if strings.EqualFold(movie.Genre, req.Genre) {
				byGenre = append(byGenre, movie)
			}
		}
		movies = byGenre
	}

	field, order := listing.ParseSort(req.Sort, req.Order)
	movies = listing.Sort(movies, field, order)

	total := int64(len(movies))
	page := req.Page
	if page < 1 {
		page = 1
	}
	movies = listing.Paginate(movies, page, req.Limit())

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		gradeCount, err := s.repo.Grade.CountByContent(ctx, entity.ContentTypeMovie, movie.ID)
		if err != nil {
			// Count is cosmetic on list views, keep going
			s.log.Warn("Failed to count grades for movie",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
			)
		}
		movieResponses[i] = response.MovieToResponse(movie, int(gradeCount))
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.String("search", req.Search),
		zap.String("sort", req.Sort),
	)

	return response.NewPaginatedResponse(movieResponses, page, req.Limit(), total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID), zap.Error(err))
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	gradeCount, err := s.repo.Grade.CountByContent(ctx, entity.ContentTypeMovie, id)
	if err != nil {
		s.log.Warn("Failed to count grades for movie",
			zap.Error(err), zap.String("movie_id", movieID))
	}

	triviaItems, err := s.repo.Trivia.FindByContent(ctx, entity.ContentTypeMovie, id)
	if err != nil {
		s.log.Warn("Failed to get trivia for movie",
			zap.Error(err), zap.String("movie_id", movieID))
	}

	s.log.Info("Movie retrieved",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	detail := response.MovieToDetailResponse(movie, int(gradeCount), response.TriviasToResponse(triviaItems))
	return &detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Genre:           req.Genre,
		ReleaseYear:     req.ReleaseYear,
		AverageRating:   0.0,
		CoverImage:      req.CoverImage,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie, 0)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Apply partial updates only for provided fields
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != movie.Description {
		movie.Description = *req.Description
		updated = true
	}

	if req.DurationMinutes != nil && *req.DurationMinutes != movie.DurationMinutes {
		movie.DurationMinutes = *req.DurationMinutes
		updated = true
	}

	if req.Genre != nil && *req.Genre != movie.Genre {
		movie.Genre = *req.Genre
		updated = true
	}

	if req.ReleaseYear != nil && *req.ReleaseYear != movie.ReleaseYear {
		movie.ReleaseYear = *req.ReleaseYear
		updated = true
	}

	if req.CoverImage != nil {
		movie.CoverImage = req.CoverImage
		updated = true
	}

	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	gradeCount, _ := s.repo.Grade.CountByContent(ctx, entity.ContentTypeMovie, id)

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	movieResp := response.MovieToResponse(movie, int(gradeCount))
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}
