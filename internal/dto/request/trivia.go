package request

type TriviaRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=movie series"`
	ContentID   string `json:"content_id" validate:"required,uuid4"`
	Question    string `json:"question" validate:"required,min=1,max=1000"`
	Answer      string `json:"answer" validate:"required,min=1,max=1000"`
}

type TriviaUpdateRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,min=1,max=1000"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,min=1,max=1000"`
}
