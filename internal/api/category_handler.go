package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// RenameCategoryRequest represents the request body for renaming a category
type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryStore store.CategoryStore
	drillService  DrillService
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(
	categoryStore store.CategoryStore,
	drillService DrillService,
	log *slog.Logger,
) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		drillService:  drillService,
		logger:        log.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /api/categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := lo.Map(categories, func(c *domain.Category, _ int) CategoryResponse {
		return categoryToResponse(*c)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateCategory handles POST /api/categories requests
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := domain.NewCategory(req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("category created", slog.String("category", category.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(*category))
}

// GetCategory handles GET /api/categories/{category} requests.
// The response includes the lock state of both drill directions so clients
// can disable the corresponding scored drill until midnight.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "category")

	status, err := h.drillService.Status(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statusToResponse(*status))
}

// RenameCategory handles PUT /api/categories/{category} requests
func (h *CategoryHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	oldName := chi.URLParam(r, "category")

	var req RenameCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.categoryStore.Rename(r.Context(), oldName, req.Name); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("category renamed",
		slog.String("old_name", oldName),
		slog.String("new_name", req.Name))

	category, err := h.categoryStore.GetByName(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(*category))
}

// DeleteCategory handles DELETE /api/categories/{category} requests
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	name := chi.URLParam(r, "category")

	if err := h.categoryStore.Delete(r.Context(), name); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("category deleted", slog.String("category", name))
	w.WriteHeader(http.StatusNoContent)
}
