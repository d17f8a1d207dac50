package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// GradeHandler handles grade record HTTP requests
type GradeHandler struct {
	gradeStore store.GradeRecordStore
	logger     *slog.Logger
}

// NewGradeHandler creates a new GradeHandler
func NewGradeHandler(gradeStore store.GradeRecordStore, log *slog.Logger) *GradeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &GradeHandler{
		gradeStore: gradeStore,
		logger:     log.With(slog.String("component", "grade_handler")),
	}
}

// ListGrades handles GET /api/grades requests
func (h *GradeHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	records, err := h.gradeStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := lo.Map(records, func(record *domain.GradeRecord, _ int) GradeRecordResponse {
		return gradeToResponse(*record)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetGrade handles GET /api/categories/{category}/grade requests
func (h *GradeHandler) GetGrade(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	record, err := h.gradeStore.GetByCategory(r.Context(), category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gradeToResponse(*record))
}
