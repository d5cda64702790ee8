package request

type GradeRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=movie series"`
	ContentID   string `json:"content_id" validate:"required,uuid4"`
	Score       int    `json:"score" validate:"required,min=1,max=10"`
}
