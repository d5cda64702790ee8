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

type SeriesService interface {
	GetSeries(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.SeriesResponse], error)
	GetSeriesByID(ctx context.Context, seriesID string) (*response.SeriesDetailResponse, error)
	CreateSeries(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error)
	UpdateSeries(ctx context.Context, seriesID string, req *request.SeriesUpdateRequest) (*response.SeriesResponse, error)
	DeleteSeries(ctx context.Context, seriesID string) error
}

type seriesService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeriesService(repo *repository.Repository, log *zap.Logger) SeriesService {
	return &seriesService{
		repo: repo,
		log:  log.With(zap.String("service", "series")),
	}
}

func (s *seriesService) GetSeries(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.SeriesResponse], error) {
	seriesList, err := s.repo.Series.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get series", zap.Error(err))
		return nil, fmt.Errorf("get series: %w", err)
	}

	seriesList = listing.Filter(seriesList, req.Search)
	if req.Genre != "" {
		var byGenre []*entity.Series
		for _, series := range seriesList {
			if strings.EqualFold(series.Genre, req.Genre) {
				byGenre = append(byGenre, series)
			}
		}
		seriesList = byGenre
	}

	field, order := listing.ParseSort(req.Sort, req.Order)
	seriesList = listing.Sort(seriesList, field, order)

	total := int64(len(seriesList))
	page := req.Page
	if page < 1 {
		page = 1
	}
	seriesList = listing.Paginate(seriesList, page, req.Limit())

	seriesResponses := make([]response.SeriesResponse, len(seriesList))
	for i, series := range seriesList {
		gradeCount, err := s.repo.Grade.CountByContent(ctx, entity.ContentTypeSeries, series.ID)
		if err != nil {
			s.log.Warn("Failed to count grades for series",
				zap.Error(err),
				zap.String("series_id", series.ID.String()),
			)
		}
		seriesResponses[i] = response.SeriesToResponse(series, int(gradeCount))
	}

	s.log.Info("Series retrieved",
		zap.Int("count", len(seriesList)),
		zap.Int64("total", total),
		zap.String("search", req.Search),
	)

	return response.NewPaginatedResponse(seriesResponses, page, req.Limit(), total), nil
}

func (s *seriesService) GetSeriesByID(ctx context.Context, seriesID string) (*response.SeriesDetailResponse, error) {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		s.log.Warn("Invalid series ID format", zap.String("series_id", seriesID), zap.Error(err))
		return nil, fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get series by ID", zap.Error(err), zap.String("series_id", seriesID))
		return nil, fmt.Errorf("get series by id: %w", err)
	}
	if series == nil {
		return nil, fmt.Errorf("series not found")
	}

	gradeCount, err := s.repo.Grade.CountByContent(ctx, entity.ContentTypeSeries, id)
	if err != nil {
		s.log.Warn("Failed to count grades for series",
			zap.Error(err), zap.String("series_id", seriesID))
	}

	episodes, err := s.repo.Episode.FindBySeriesID(ctx, id)
	if err != nil {
		s.log.Warn("Failed to get episodes for series",
			zap.Error(err), zap.String("series_id", seriesID))
	}

	triviaItems, err := s.repo.Trivia.FindByContent(ctx, entity.ContentTypeSeries, id)
	if err != nil {
		s.log.Warn("Failed to get trivia for series",
			zap.Error(err), zap.String("series_id", seriesID))
	}

	s.log.Info("Series retrieved",
		zap.String("series_id", seriesID),
		zap.String("title", series.Title),
		zap.Int("episodes", len(episodes)),
	)

	detail := response.SeriesToDetailResponse(series, int(gradeCount),
		response.EpisodesToResponse(episodes), response.TriviasToResponse(triviaItems))
	return &detail, nil
}

func (s *seriesService) CreateSeries(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create series validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status, ok := entity.ParseSeriesStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid status: %s", req.Status)
	}

	now := time.Now()
	series := &entity.Series{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         req.Title,
		Description:   req.Description,
		EpisodeCount:  req.EpisodeCount,
		Genre:         req.Genre,
		ReleaseYear:   req.ReleaseYear,
		AverageRating: 0.0,
		CoverImage:    req.CoverImage,
		Status:        status,
	}

	if err := s.repo.Series.Create(ctx, series); err != nil {
		s.log.Error("Failed to create series", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create series: %w", err)
	}

	s.log.Info("Series created",
		zap.String("series_id", series.ID.String()),
		zap.String("title", series.Title),
	)

	seriesResp := response.SeriesToResponse(series, 0)
	return &seriesResp, nil
}

func (s *seriesService) UpdateSeries(ctx context.Context, seriesID string, req *request.SeriesUpdateRequest) (*response.SeriesResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update series validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(seriesID)
	if err != nil {
		return nil, fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find series: %w", err)
	}
	if series == nil {
		return nil, fmt.Errorf("series not found")
	}

	updated := false

	if req.Title != nil && *req.Title != series.Title {
		series.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != series.Description {
		series.Description = *req.Description
		updated = true
	}

	if req.EpisodeCount != nil && *req.EpisodeCount != series.EpisodeCount {
		series.EpisodeCount = *req.EpisodeCount
		updated = true
	}

	if req.Genre != nil && *req.Genre != series.Genre {
		series.Genre = *req.Genre
		updated = true
	}

	if req.ReleaseYear != nil && *req.ReleaseYear != series.ReleaseYear {
		series.ReleaseYear = *req.ReleaseYear
		updated = true
	}

	if req.CoverImage != nil {
		series.CoverImage = req.CoverImage
		updated = true
	}

	if req.Status != nil {
		status, ok := entity.ParseSeriesStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
		if status != series.Status {
			series.Status = status
			updated = true
		}
	}

	if updated {
		series.UpdatedAt = time.Now()
		if err := s.repo.Series.Update(ctx, series); err != nil {
			s.log.Error("Failed to update series", zap.Error(err), zap.String("series_id", seriesID))
			return nil, fmt.Errorf("update series: %w", err)
		}
	}

	gradeCount, _ := s.repo.Grade.CountByContent(ctx, entity.ContentTypeSeries, id)

	s.log.Info("Series updated",
		zap.String("series_id", seriesID),
		zap.String("title", series.Title),
		zap.Bool("was_updated", updated),
	)

	seriesResp := response.SeriesToResponse(series, int(gradeCount))
	return &seriesResp, nil
}

func (s *seriesService) DeleteSeries(ctx context.Context, seriesID string) error {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		return fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find series: %w", err)
	}
	if series == nil {
		return fmt.Errorf("series not found")
	}

	if err := s.repo.Series.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete series", zap.Error(err), zap.String("series_id", seriesID))
		return fmt.Errorf("delete series: %w", err)
	}

	s.log.Info("Series deleted",
		zap.String("series_id", seriesID),
		zap.String("title", series.Title),
	)

	return nil
}
