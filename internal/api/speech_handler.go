package api

import (
	"log/slog"
	"net/http"

	"github.com/lexidrill/lexidrill-api/internal/api/shared"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/speech"
)

// SynthesizeRequest represents the request body for text-to-speech
type SynthesizeRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

// SpeechHandler handles text-to-speech HTTP requests. The synthesizer may
// be nil when speech is disabled; requests then fail with 503.
type SpeechHandler struct {
	synthesizer speech.Synthesizer
	logger      *slog.Logger
}

// NewSpeechHandler creates a new SpeechHandler
func NewSpeechHandler(synthesizer speech.Synthesizer, log *slog.Logger) *SpeechHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SpeechHandler{
		synthesizer: synthesizer,
		logger:      log.With(slog.String("component", "speech_handler")),
	}
}

// Synthesize handles POST /api/tts requests, returning MP3 audio
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if h.synthesizer == nil {
		err := speech.ErrNotConfigured
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req SynthesizeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("speech synthesized", slog.Int("audio_bytes", len(audio)))
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		log.Error("failed to write audio response", slog.String("error", err.Error()))
	}
}
