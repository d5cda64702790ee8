package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EpisodeService interface {
	GetEpisodesBySeries(ctx context.Context, seriesID string) ([]response.EpisodeResponse, error)
	GetEpisodeByID(ctx context.Context, episodeID string) (*response.EpisodeResponse, error)
	CreateEpisode(ctx context.Context, req *request.EpisodeRequest) (*response.EpisodeResponse, error)
	UpdateEpisode(ctx context.Context, episodeID string, req *request.EpisodeUpdateRequest) (*response.EpisodeResponse, error)
	DeleteEpisode(ctx context.Context, episodeID string) error
}

type episodeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEpisodeService(repo *repository.Repository, log *zap.Logger) EpisodeService {
	return &episodeService{
		repo: repo,
		log:  log.With(zap.String("service", "episode")),
	}
}

func (s *episodeService) GetEpisodesBySeries(ctx context.Context, seriesID string) ([]response.EpisodeResponse, error) {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		return nil, fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find series for episodes", zap.Error(err), zap.String("series_id", seriesID))
		return nil, fmt.Errorf("find series: %w", err)
	}
	if series == nil {
		return nil, fmt.Errorf("series not found")
	}

	episodes, err := s.repo.Episode.FindBySeriesID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get episodes", zap.Error(err), zap.String("series_id", seriesID))
		return nil, fmt.Errorf("get episodes: %w", err)
	}

	s.log.Info("Episodes retrieved",
		zap.String("series_id", seriesID),
		zap.Int("count", len(episodes)),
	)

	return response.EpisodesToResponse(episodes), nil
}

func (s *episodeService) GetEpisodeByID(ctx context.Context, episodeID string) (*response.EpisodeResponse, error) {
	id, err := uuid.Parse(episodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid episode id: %w", err)
	}

	episode, err := s.repo.Episode.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get episode by ID", zap.Error(err), zap.String("episode_id", episodeID))
		return nil, fmt.Errorf("get episode by id: %w", err)
	}
	if episode == nil {
		return nil, fmt.Errorf("episode not found")
	}

	resp := response.EpisodeToResponse(episode)
	return &resp, nil
}

func (s *episodeService) CreateEpisode(ctx context.Context, req *request.EpisodeRequest) (*response.EpisodeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create episode validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seriesID, err := uuid.Parse(req.SeriesID)
	if err != nil {
		return nil, fmt.Errorf("invalid series id: %w", err)
	}

	// Episodes are owned by exactly one series
	series, err := s.repo.Series.FindByID(ctx, seriesID)
	if err != nil {
		s.log.Error("Failed to check series for episode", zap.Error(err), zap.String("series_id", req.SeriesID))
		return nil, fmt.Errorf("find series: %w", err)
	}
	if series == nil {
		return nil, fmt.Errorf("series not found")
	}

	now := time.Now()
	episode := &entity.Episode{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeriesID:        seriesID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		EpisodeNumber:   req.EpisodeNumber,
		CoverImage:      req.CoverImage,
	}

	if err := s.repo.Episode.Create(ctx, episode); err != nil {
		s.log.Error("Failed to create episode",
			zap.Error(err),
			zap.String("series_id", req.SeriesID),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create episode: %w", err)
	}

	// Keep the denormalized episode count in step
	s.refreshEpisodeCount(ctx, series)

	s.log.Info("Episode created",
		zap.String("episode_id", episode.ID.String()),
		zap.String("series_id", req.SeriesID),
		zap.Int("episode_number", episode.EpisodeNumber),
	)

	resp := response.EpisodeToResponse(episode)
	return &resp, nil
}

func (s *episodeService) UpdateEpisode(ctx context.Context, episodeID string, req *request.EpisodeUpdateRequest) (*response.EpisodeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update episode validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(episodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid episode id: %w", err)
	}

	episode, err := s.repo.Episode.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find episode: %w", err)
	}
	if episode == nil {
		return nil, fmt.Errorf("episode not found")
	}

	updated := false

	if req.Title != nil && *req.Title != episode.Title {
		episode.Title = *req.Title
		updated = true
	}

	if req.Description != nil {
		episode.Description = req.Description
		updated = true
	}

	if req.DurationMinutes != nil && *req.DurationMinutes != episode.DurationMinutes {
		episode.DurationMinutes = *req.DurationMinutes
		updated = true
	}

	if req.EpisodeNumber != nil && *req.EpisodeNumber != episode.EpisodeNumber {
		episode.EpisodeNumber = *req.EpisodeNumber
		updated = true
	}

	if req.CoverImage != nil {
		episode.CoverImage = req.CoverImage
		updated = true
	}

	if updated {
		episode.UpdatedAt = time.Now()
		if err := s.repo.Episode.Update(ctx, episode); err != nil {
			s.log.Error("Failed to update episode", zap.Error(err), zap.String("episode_id", episodeID))
			return nil, fmt.Errorf("update episode: %w", err)
		}
	}

	s.log.Info("Episode updated",
		zap.String("episode_id", episodeID),
		zap.Bool("was_updated", updated),
	)

	resp := response.EpisodeToResponse(episode)
	return &resp, nil
}

func (s *episodeService) DeleteEpisode(ctx context.Context, episodeID string) error {
	id, err := uuid.Parse(episodeID)
	if err != nil {
		return fmt.Errorf("invalid episode id: %w", err)
	}

	episode, err := s.repo.Episode.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find episode: %w", err)
	}
	if episode == nil {
		return fmt.Errorf("episode not found")
	}

	if err := s.repo.Episode.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete episode", zap.Error(err), zap.String("episode_id", episodeID))
		return fmt.Errorf("delete episode: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, episode.SeriesID)
	if err == nil && series != nil {
		s.refreshEpisodeCount(ctx, series)
	}

	s.log.Info("Episode deleted",
		zap.String("episode_id", episodeID),
		zap.String("series_id", episode.SeriesID.String()),
	)

	return nil
}

func (s *episodeService) refreshEpisodeCount(ctx context.Context, series *entity.Series) {
	count, err := s.repo.Episode.CountBySeriesID(ctx, series.ID)
	if err != nil {
		s.log.Warn("Failed to count episodes for series",
			zap.Error(err), zap.String("series_id", series.ID.String()))
		return
	}

	if int(count) == series.EpisodeCount {
		return
	}

	series.EpisodeCount = int(count)
	series.UpdatedAt = time.Now()
	if err := s.repo.Series.Update(ctx, series); err != nil {
		s.log.Warn("Failed to refresh episode count",
			zap.Error(err), zap.String("series_id", series.ID.String()))
	}
}
