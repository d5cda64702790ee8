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

type TriviaService interface {
	GetTriviaForContent(ctx context.Context, contentType, contentID string) ([]response.TriviaResponse, error)
	CreateTrivia(ctx context.Context, req *request.TriviaRequest) (*response.TriviaResponse, error)
	UpdateTrivia(ctx context.Context, triviaID string, req *request.TriviaUpdateRequest) (*response.TriviaResponse, error)
	DeleteTrivia(ctx context.Context, triviaID string) error
}

type triviaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTriviaService(repo *repository.Repository, log *zap.Logger) TriviaService {
	return &triviaService{
		repo: repo,
		log:  log.With(zap.String("service", "trivia")),
	}
}

func (s *triviaService) GetTriviaForContent(ctx context.Context, contentTypeRaw, contentIDRaw string) ([]response.TriviaResponse, error) {
	contentType, ok := entity.ParseContentType(contentTypeRaw)
	if !ok {
		return nil, fmt.Errorf("invalid content type: %s", contentTypeRaw)
	}

	contentID, err := uuid.Parse(contentIDRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid content id: %w", err)
	}

	items, err := s.repo.Trivia.FindByContent(ctx, contentType, contentID)
	if err != nil {
		s.log.Error("Failed to get trivia for content",
			zap.Error(err),
			zap.String("content_id", contentIDRaw),
		)
		return nil, fmt.Errorf("get trivia: %w", err)
	}

	return response.TriviasToResponse(items), nil
}

func (s *triviaService) CreateTrivia(ctx context.Context, req *request.TriviaRequest) (*response.TriviaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create trivia validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	contentType, ok := entity.ParseContentType(req.ContentType)
	if !ok {
		return nil, fmt.Errorf("invalid content type: %s", req.ContentType)
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("invalid content id: %w", err)
	}

	// Trivia must hang off an existing movie or series
	switch contentType {
	case entity.ContentTypeMovie:
		movie, err := s.repo.Movie.FindByID(ctx, contentID)
		if err != nil {
			return nil, fmt.Errorf("check movie: %w", err)
		}
		if movie == nil {
			return nil, fmt.Errorf("movie not found")
		}
	case entity.ContentTypeSeries:
		series, err := s.repo.Series.FindByID(ctx, contentID)
		if err != nil {
			return nil, fmt.Errorf("check series: %w", err)
		}
		if series == nil {
			return nil, fmt.Errorf("series not found")
		}
	}

	now := time.Now()
	trivia := &entity.Trivia{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ContentType: contentType,
		ContentID:   contentID,
		Question:    req.Question,
		Answer:      req.Answer,
	}

	if err := s.repo.Trivia.Create(ctx, trivia); err != nil {
		s.log.Error("Failed to create trivia",
			zap.Error(err),
			zap.String("content_id", req.ContentID),
		)
		return nil, fmt.Errorf("create trivia: %w", err)
	}

	s.log.Info("Trivia created",
		zap.String("trivia_id", trivia.ID.String()),
		zap.String("content_type", string(contentType)),
		zap.String("content_id", req.ContentID),
	)

	resp := response.TriviaToResponse(trivia)
	return &resp, nil
}

func (s *triviaService) UpdateTrivia(ctx context.Context, triviaID string, req *request.TriviaUpdateRequest) (*response.TriviaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update trivia validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(triviaID)
	if err != nil {
		return nil, fmt.Errorf("invalid trivia id: %w", err)
	}

	trivia, err := s.repo.Trivia.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find trivia: %w", err)
	}
	if trivia == nil {
		return nil, fmt.Errorf("trivia not found")
	}

	updated := false

	if req.Question != nil && *req.Question != trivia.Question {
		trivia.Question = *req.Question
		updated = true
	}

	if req.Answer != nil && *req.Answer != trivia.Answer {
		trivia.Answer = *req.Answer
		updated = true
	}

	if updated {
		trivia.UpdatedAt = time.Now()
		if err := s.repo.Trivia.Update(ctx, trivia); err != nil {
			s.log.Error("Failed to update trivia", zap.Error(err), zap.String("trivia_id", triviaID))
			return nil, fmt.Errorf("update trivia: %w", err)
		}
	}

	s.log.Info("Trivia updated",
		zap.String("trivia_id", triviaID),
		zap.Bool("was_updated", updated),
	)

	resp := response.TriviaToResponse(trivia)
	return &resp, nil
}

func (s *triviaService) DeleteTrivia(ctx context.Context, triviaID string) error {
	id, err := uuid.Parse(triviaID)
	if err != nil {
		return fmt.Errorf("invalid trivia id: %w", err)
	}

	trivia, err := s.repo.Trivia.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find trivia: %w", err)
	}
	if trivia == nil {
		return fmt.Errorf("trivia not found")
	}

	if err := s.repo.Trivia.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete trivia", zap.Error(err), zap.String("trivia_id", triviaID))
		return fmt.Errorf("delete trivia: %w", err)
	}

	s.log.Info("Trivia deleted", zap.String("trivia_id", triviaID))
	return nil
}
