package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/generation"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

const (
	defaultSuggestionCount = 10
	maxSuggestionCount     = 20
)

// SuggestHeadwordRequest represents the request body for a single headword lookup
type SuggestHeadwordRequest struct {
	Translation string `json:"translation" validate:"required,min=1,max=200"`
}

// SuggestionHandler handles LLM-backed vocabulary suggestion requests.
// The generator may be nil when no API key is configured; requests then
// fail with 503 rather than at startup.
type SuggestionHandler struct {
	generator generation.Generator
	wordStore store.WordStore
	logger    *slog.Logger
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(
	generator generation.Generator,
	wordStore store.WordStore,
	log *slog.Logger,
) *SuggestionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SuggestionHandler{
		generator: generator,
		wordStore: wordStore,
		logger:    log.With(slog.String("component", "suggestion_handler")),
	}
}

// SuggestWords handles GET /api/categories/{category}/suggestions requests.
// An optional count query parameter bounds the number of suggestions.
func (h *SuggestionHandler) SuggestWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	category := chi.URLParam(r, "category")

	if h.generator == nil {
		err := generation.ErrNotConfigured
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	count := defaultSuggestionCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSuggestionCount {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid count parameter")
			return
		}
		count = parsed
	}

	words, err := h.wordStore.ListByCategory(r.Context(), category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	existing := lo.Map(words, func(word *domain.Word, _ int) string { return word.Headword })

	suggestions, err := h.generator.SuggestWords(r.Context(), category, existing, count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("suggestions generated",
		slog.String("category", category),
		slog.Int("count", len(suggestions)))

	response := lo.Map(suggestions, func(s generation.Suggestion, _ int) SuggestionResponse {
		return SuggestionResponse{Headword: s.Headword, Translation: s.Translation}
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// SuggestHeadword handles POST /api/categories/{category}/suggest-headword requests
func (h *SuggestionHandler) SuggestHeadword(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	if h.generator == nil {
		err := generation.ErrNotConfigured
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req SuggestHeadwordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	headword, err := h.generator.SuggestHeadword(r.Context(), category, req.Translation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionResponse{
		Headword:    headword,
		Translation: req.Translation,
	})
}
