package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TriviaHandler struct {
	service usecase.TriviaService
	log     *zap.Logger
}

func NewTriviaHandler(service usecase.TriviaService, log *zap.Logger) *TriviaHandler {
	return &TriviaHandler{
		service: service,
		log:     log.With(zap.String("handler", "trivia")),
	}
}

// GetTriviaForContent handles GET /api/v1/trivia/content/{type}/{id}
func (h *TriviaHandler) GetTriviaForContent(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "type")
	contentID := chi.URLParam(r, "id")

	items, err := h.service.GetTriviaForContent(r.Context(), contentType, contentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get trivia")
		return
	}

	utils.ResponseSuccess(w, "Trivia retrieved successfully", items)
}

// CreateTrivia handles POST /api/v1/admin/trivia
func (h *TriviaHandler) CreateTrivia(w http.ResponseWriter, r *http.Request) {
	var req request.TriviaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trivia, err := h.service.CreateTrivia(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create trivia")
		return
	}

	utils.ResponseCreated(w, "Trivia created successfully", trivia)
}

// UpdateTrivia handles PUT /api/v1/admin/trivia/{id}
func (h *TriviaHandler) UpdateTrivia(w http.ResponseWriter, r *http.Request) {
	triviaID := chi.URLParam(r, "id")
	if triviaID == "" {
		utils.ResponseBadRequest(w, "Trivia ID is required", nil)
		return
	}

	var req request.TriviaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trivia, err := h.service.UpdateTrivia(r.Context(), triviaID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update trivia")
		return
	}

	utils.ResponseSuccess(w, "Trivia updated successfully", trivia)
}

// DeleteTrivia handles DELETE /api/v1/admin/trivia/{id}
func (h *TriviaHandler) DeleteTrivia(w http.ResponseWriter, r *http.Request) {
	triviaID := chi.URLParam(r, "id")
	if triviaID == "" {
		utils.ResponseBadRequest(w, "Trivia ID is required", nil)
		return
	}

	if err := h.service.DeleteTrivia(r.Context(), triviaID); err != nil {
		handleServiceError(h.log, w, err, "delete trivia")
		return
	}

	utils.ResponseSuccess(w, "Trivia deleted successfully", nil)
}
