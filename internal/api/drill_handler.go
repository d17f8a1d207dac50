package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/service"
)

// SubmitAttemptRequest represents the request body for a drill attempt.
// Answers must line up one-to-one with the category's word list as served
// by the words endpoint.
type SubmitAttemptRequest struct {
	Mode     string   `json:"mode" validate:"required,oneof=forward reverse"`
	Answers  []string `json:"answers" validate:"required"`
	Practice bool     `json:"practice"`
}

// DrillService defines the drill operations the handlers depend on.
// *service.DrillService satisfies it.
type DrillService interface {
	SubmitScoredAttempt(ctx context.Context, category string, mode domain.SubMode, answers []string) (*service.AttemptResult, error)
	SubmitPracticeAttempt(ctx context.Context, category string, mode domain.SubMode, answers []string) (*service.AttemptResult, error)
	Status(ctx context.Context, category string) (*service.CategoryStatus, error)
}

// DrillHandler handles drill attempt HTTP requests
type DrillHandler struct {
	drillService DrillService
	logger       *slog.Logger
}

// NewDrillHandler creates a new DrillHandler
func NewDrillHandler(drillService DrillService, log *slog.Logger) *DrillHandler {
	if log == nil {
		log = slog.Default()
	}
	return &DrillHandler{
		drillService: drillService,
		logger:       log.With(slog.String("component", "drill_handler")),
	}
}

// SubmitAttempt handles POST /api/categories/{category}/attempts requests.
// Scored attempts feed the progress engine; practice attempts only grade.
func (h *DrillHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	category := chi.URLParam(r, "category")

	var req SubmitAttemptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	mode, err := domain.ParseSubMode(req.Mode)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	var result *service.AttemptResult
	if req.Practice {
		result, err = h.drillService.SubmitPracticeAttempt(r.Context(), category, mode, req.Answers)
	} else {
		result, err = h.drillService.SubmitScoredAttempt(r.Context(), category, mode, req.Answers)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("attempt handled",
		slog.String("category", category),
		slog.String("mode", string(mode)),
		slog.Bool("practice", req.Practice),
		slog.Int("percent", result.Result.Percent))
	shared.RespondWithJSON(w, r, http.StatusOK, attemptToResponse(*result))
}
