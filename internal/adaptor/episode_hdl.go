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

type EpisodeHandler struct {
	service usecase.EpisodeService
	log     *zap.Logger
}

func NewEpisodeHandler(service usecase.EpisodeService, log *zap.Logger) *EpisodeHandler {
	return &EpisodeHandler{
		service: service,
		log:     log.With(zap.String("handler", "episode")),
	}
}

// GetEpisodesBySeries handles GET /api/v1/series/{id}/episodes
func (h *EpisodeHandler) GetEpisodesBySeries(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")
	if seriesID == "" {
		utils.ResponseBadRequest(w, "Series ID is required", nil)
		return
	}

	episodes, err := h.service.GetEpisodesBySeries(r.Context(), seriesID)
	if err != nil {
		handleServiceError(h.log, w, err, "get episodes")
		return
	}

	utils.ResponseSuccess(w, "Episodes retrieved successfully", episodes)
}

// GetEpisodeByID handles GET /api/v1/episodes/{id}
func (h *EpisodeHandler) GetEpisodeByID(w http.ResponseWriter, r *http.Request) {
	episodeID := chi.URLParam(r, "id")
	if episodeID == "" {
		utils.ResponseBadRequest(w, "Episode ID is required", nil)
		return
	}

	episode, err := h.service.GetEpisodeByID(r.Context(), episodeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get episode by ID")
		return
	}

	utils.ResponseSuccess(w, "Episode retrieved successfully", episode)
}

// CreateEpisode handles POST /api/v1/admin/episodes
func (h *EpisodeHandler) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	var req request.EpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	episode, err := h.service.CreateEpisode(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create episode")
		return
	}

	utils.ResponseCreated(w, "Episode created successfully", episode)
}

// UpdateEpisode handles PUT /api/v1/admin/episodes/{id}
func (h *EpisodeHandler) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	episodeID := chi.URLParam(r, "id")
	if episodeID == "" {
		utils.ResponseBadRequest(w, "Episode ID is required", nil)
		return
	}

	var req request.EpisodeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	episode, err := h.service.UpdateEpisode(r.Context(), episodeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update episode")
		return
	}

	utils.ResponseSuccess(w, "Episode updated successfully", episode)
}

// DeleteEpisode handles DELETE /api/v1/admin/episodes/{id}
func (h *EpisodeHandler) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	episodeID := chi.URLParam(r, "id")
	if episodeID == "" {
		utils.ResponseBadRequest(w, "Episode ID is required", nil)
		return
	}

	if err := h.service.DeleteEpisode(r.Context(), episodeID); err != nil {
		handleServiceError(h.log, w, err, "delete episode")
		return
	}

	utils.ResponseSuccess(w, "Episode deleted successfully", nil)
}
