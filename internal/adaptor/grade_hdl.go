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

type GradeHandler struct {
	service usecase.GradeService
	log     *zap.Logger
}

func NewGradeHandler(service usecase.GradeService, log *zap.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		log:     log.With(zap.String("handler", "grade")),
	}
}

// SubmitGrade handles POST /api/v1/grades. Submitting a second grade
// for the same content replaces the first.
func (h *GradeHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user session")
		return
	}

	var req request.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	grade, err := h.service.SubmitGrade(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit grade")
		return
	}

	utils.ResponseCreated(w, "Grade submitted successfully", grade)
}

// GetOwnGrades handles GET /api/v1/grades/me
func (h *GradeHandler) GetOwnGrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user session")
		return
	}

	grades, err := h.service.GetUserGrades(r.Context(), userID, userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get own grades")
		return
	}

	utils.ResponseSuccess(w, "Grades retrieved successfully", grades)
}

// GetUserGrades handles GET /api/v1/grades/user/{id}. Non-admin
// callers may only fetch their own grades.
func (h *GradeHandler) GetUserGrades(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user session")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	grades, err := h.service.GetUserGrades(r.Context(), callerID, targetID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user grades")
		return
	}

	utils.ResponseSuccess(w, "Grades retrieved successfully", grades)
}

// GetOwnGradeForContent handles GET /api/v1/grades/content/{type}/{id}/me
func (h *GradeHandler) GetOwnGradeForContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user session")
		return
	}

	contentType := chi.URLParam(r, "type")
	contentID := chi.URLParam(r, "id")

	grade, err := h.service.GetOwnGradeForContent(r.Context(), userID, contentType, contentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get grade for content")
		return
	}

	utils.ResponseSuccess(w, "Grade retrieved successfully", grade)
}

// DeleteGrade handles DELETE /api/v1/grades/{id}
func (h *GradeHandler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user session")
		return
	}

	gradeID := chi.URLParam(r, "id")
	if gradeID == "" {
		utils.ResponseBadRequest(w, "Grade ID is required", nil)
		return
	}

	if err := h.service.DeleteGrade(r.Context(), callerID, gradeID); err != nil {
		handleServiceError(h.log, w, err, "delete grade")
		return
	}

	utils.ResponseSuccess(w, "Grade deleted successfully", nil)
}
