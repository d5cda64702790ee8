package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type GradeResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	ContentType entity.ContentType `json:"content_type"`
	ContentID   string             `json:"content_id"`
	Score       int                `json:"score"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func GradeToResponse(grade *entity.Grade) GradeResponse {
	return GradeResponse{
		ID:          grade.ID.String(),
		UserID:      grade.UserID.String(),
		ContentType: grade.ContentType,
		ContentID:   grade.ContentID.String(),
		Score:       grade.Score,
		CreatedAt:   grade.CreatedAt,
		UpdatedAt:   grade.UpdatedAt,
	}
}

func GradesToResponse(grades []*entity.Grade) []GradeResponse {
	responses := make([]GradeResponse, len(grades))
	for i, grade := range grades {
		responses[i] = GradeToResponse(grade)
	}
	return responses
}
