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

type SeriesHandler struct {
	service usecase.SeriesService
	log     *zap.Logger
}

func NewSeriesHandler(service usecase.SeriesService, log *zap.Logger) *SeriesHandler {
	return &SeriesHandler{
		service: service,
		log:     log.With(zap.String("handler", "series")),
	}
}

// GetSeries handles GET /api/v1/series
func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.GetSeries(r.Context(), parseListRequest(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get series")
		return
	}

	utils.ResponseSuccess(w, "Series retrieved successfully", series)
}

// GetSeriesByID handles GET /api/v1/series/{id}
func (h *SeriesHandler) GetSeriesByID(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")
	if seriesID == "" {
		utils.ResponseBadRequest(w, "Series ID is required", nil)
		return
	}

	series, err := h.service.GetSeriesByID(r.Context(), seriesID)
	if err != nil {
		handleServiceError(h.log, w, err, "get series by ID")
		return
	}

	utils.ResponseSuccess(w, "Series retrieved successfully", series)
}

// CreateSeries handles POST /api/v1/admin/series
func (h *SeriesHandler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req request.SeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	series, err := h.service.CreateSeries(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create series")
		return
	}

	utils.ResponseCreated(w, "Series created successfully", series)
}

// UpdateSeries handles PUT /api/v1/admin/series/{id}
func (h *SeriesHandler) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")
	if seriesID == "" {
		utils.ResponseBadRequest(w, "Series ID is required", nil)
		return
	}

	var req request.SeriesUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	series, err := h.service.UpdateSeries(r.Context(), seriesID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update series")
		return
	}

	utils.ResponseSuccess(w, "Series updated successfully", series)
}

// DeleteSeries handles DELETE /api/v1/admin/series/{id}
func (h *SeriesHandler) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")
	if seriesID == "" {
		utils.ResponseBadRequest(w, "Series ID is required", nil)
		return
	}

	if err := h.service.DeleteSeries(r.Context(), seriesID); err != nil {
		handleServiceError(h.log, w, err, "delete series")
		return
	}

	utils.ResponseSuccess(w, "Series deleted successfully", nil)
}
