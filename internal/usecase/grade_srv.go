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

type GradeService interface {
	// SubmitGrade creates the caller's rating for a content item, or
	// updates it when one already exists.
	SubmitGrade(ctx context.Context, userID uuid.UUID, req *request.GradeRequest) (*response.GradeResponse, error)
	GetUserGrades(ctx context.Context, callerID uuid.UUID, targetUserID string) ([]response.GradeResponse, error)
	GetOwnGradeForContent(ctx context.Context, userID uuid.UUID, contentType, contentID string) (*response.GradeResponse, error)
	DeleteGrade(ctx context.Context, callerID uuid.UUID, gradeID string) error
}

type gradeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGradeService(repo *repository.Repository, log *zap.Logger) GradeService {
	return &gradeService{
		repo: repo,
		log:  log.With(zap.String("service", "grade")),
	}
}

// contentExists checks the graded movie or series row is actually there.
func (s *gradeService) contentExists(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (bool, error) {
	switch contentType {
	case entity.ContentTypeMovie:
		movie, err := s.repo.Movie.FindByID(ctx, contentID)
		if err != nil {
			return false, err
		}
		return movie != nil, nil
	case entity.ContentTypeSeries:
		series, err := s.repo.Series.FindByID(ctx, contentID)
		if err != nil {
			return false, err
		}
		return series != nil, nil
	default:
		return false, fmt.Errorf("invalid content type: %s", contentType)
	}
}

func (s *gradeService) SubmitGrade(ctx context.Context, userID uuid.UUID, req *request.GradeRequest) (*response.GradeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit grade validation failed", zap.Any("errors", errs))
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

	exists, err := s.contentExists(ctx, contentType, contentID)
	if err != nil {
		s.log.Error("Failed to check content for grade",
			zap.Error(err),
			zap.String("content_id", req.ContentID),
		)
		return nil, fmt.Errorf("check content: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%s not found", contentType)
	}

	now := time.Now()
	grade := &entity.Grade{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Score:       req.Score,
	}

	if err := s.repo.Grade.Upsert(ctx, grade); err != nil {
		s.log.Error("Failed to submit grade",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("content_id", req.ContentID),
		)
		return nil, fmt.Errorf("submit grade: %w", err)
	}

	s.log.Info("Grade submitted",
		zap.String("grade_id", grade.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("content_type", string(contentType)),
		zap.String("content_id", req.ContentID),
		zap.Int("score", req.Score),
	)

	resp := response.GradeToResponse(grade)
	return &resp, nil
}

func (s *gradeService) GetUserGrades(ctx context.Context, callerID uuid.UUID, targetUserID string) ([]response.GradeResponse, error) {
	targetID, err := uuid.Parse(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	// Users see their own grades; admins see anyone's
	if callerID != targetID {
		caller, err := s.repo.User.FindByID(ctx, callerID)
		if err != nil {
			s.log.Error("Failed to check caller role", zap.Error(err), zap.String("user_id", callerID.String()))
			return nil, fmt.Errorf("check caller: %w", err)
		}
		if caller == nil || caller.Role != entity.RoleAdmin {
			return nil, fmt.Errorf("forbidden: cannot view another user's grades")
		}
	}

	grades, err := s.repo.Grade.FindByUserID(ctx, targetID)
	if err != nil {
		s.log.Error("Failed to get user grades", zap.Error(err), zap.String("user_id", targetUserID))
		return nil, fmt.Errorf("get grades: %w", err)
	}

	return response.GradesToResponse(grades), nil
}

func (s *gradeService) GetOwnGradeForContent(ctx context.Context, userID uuid.UUID, contentTypeRaw, contentIDRaw string) (*response.GradeResponse, error) {
	contentType, ok := entity.ParseContentType(contentTypeRaw)
	if !ok {
		return nil, fmt.Errorf("invalid content type: %s", contentTypeRaw)
	}

	contentID, err := uuid.Parse(contentIDRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid content id: %w", err)
	}

	grade, err := s.repo.Grade.FindByUserAndContent(ctx, userID, contentType, contentID)
	if err != nil {
		s.log.Error("Failed to get own grade",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("content_id", contentIDRaw),
		)
		return nil, fmt.Errorf("get grade: %w", err)
	}
	if grade == nil {
		return nil, fmt.Errorf("grade not found")
	}

	resp := response.GradeToResponse(grade)
	return &resp, nil
}

func (s *gradeService) DeleteGrade(ctx context.Context, callerID uuid.UUID, gradeID string) error {
	id, err := uuid.Parse(gradeID)
	if err != nil {
		return fmt.Errorf("invalid grade id: %w", err)
	}

	grade, err := s.repo.Grade.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find grade: %w", err)
	}
	if grade == nil {
		return fmt.Errorf("grade not found")
	}

	// Only the grade owner or an admin may remove it
	if grade.UserID != callerID {
		caller, err := s.repo.User.FindByID(ctx, callerID)
		if err != nil {
			s.log.Error("Failed to check caller role", zap.Error(err), zap.String("user_id", callerID.String()))
			return fmt.Errorf("check caller: %w", err)
		}
		if caller == nil || caller.Role != entity.RoleAdmin {
			return fmt.Errorf("forbidden: cannot delete another user's grade")
		}
	}

	if err := s.repo.Grade.Delete(ctx, grade); err != nil {
		s.log.Error("Failed to delete grade", zap.Error(err), zap.String("grade_id", gradeID))
		return fmt.Errorf("delete grade: %w", err)
	}

	s.log.Info("Grade deleted",
		zap.String("grade_id", gradeID),
		zap.String("user_id", grade.UserID.String()),
	)

	return nil
}
