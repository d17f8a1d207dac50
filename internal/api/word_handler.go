package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// CreateWordRequest represents the request body for adding a word
type CreateWordRequest struct {
	Headword    string `json:"headword" validate:"required,min=1,max=200"`
	Translation string `json:"translation" validate:"required,min=1,max=200"`
	Association string `json:"association" validate:"max=500"`
}

// UpdateWordRequest represents the request body for editing a word
type UpdateWordRequest struct {
	Headword    string `json:"headword" validate:"required,min=1,max=200"`
	Translation string `json:"translation" validate:"required,min=1,max=200"`
	Association string `json:"association" validate:"max=500"`
}

// WordHandler handles word-related HTTP requests
type WordHandler struct {
	wordStore store.WordStore
	logger    *slog.Logger
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(wordStore store.WordStore, log *slog.Logger) *WordHandler {
	if log == nil {
		log = slog.Default()
	}
	return &WordHandler{
		wordStore: wordStore,
		logger:    log.With(slog.String("component", "word_handler")),
	}
}

// ListWords handles GET /api/categories/{category}/words requests
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	words, err := h.wordStore.ListByCategory(r.Context(), category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := lo.Map(words, func(word *domain.Word, _ int) WordResponse {
		return wordToResponse(*word)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateWord handles POST /api/categories/{category}/words requests
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	category := chi.URLParam(r, "category")

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	word, err := domain.NewWord(category, req.Headword, req.Translation, req.Association)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.wordStore.Create(r.Context(), word); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("category", category))
	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(*word))
}

// UpdateWord handles PUT /api/words/{id} requests
func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID")
		return
	}

	var req UpdateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	word, err := h.wordStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := word.UpdateTerms(req.Headword, req.Translation, req.Association); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.wordStore.Update(r.Context(), word); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("word updated", slog.String("word_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(*word))
}

// DeleteWord handles DELETE /api/words/{id} requests
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID")
		return
	}

	if err := h.wordStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("word deleted", slog.String("word_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
