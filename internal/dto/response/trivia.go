package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type TriviaResponse struct {
	ID          string             `json:"id"`
	ContentType entity.ContentType `json:"content_type"`
	ContentID   string             `json:"content_id"`
	Question    string             `json:"question"`
	Answer      string             `json:"answer"`
	CreatedAt   time.Time          `json:"created_at"`
}

func TriviaToResponse(trivia *entity.Trivia) TriviaResponse {
	return TriviaResponse{
		ID:          trivia.ID.String(),
		ContentType: trivia.ContentType,
		ContentID:   trivia.ContentID.String(),
		Question:    trivia.Question,
		Answer:      trivia.Answer,
		CreatedAt:   trivia.CreatedAt,
	}
}

func TriviasToResponse(items []*entity.Trivia) []TriviaResponse {
	responses := make([]TriviaResponse, len(items))
	for i, trivia := range items {
		responses[i] = TriviaToResponse(trivia)
	}
	return responses
}
