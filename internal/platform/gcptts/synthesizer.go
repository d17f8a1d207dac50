// Package gcptts implements the speech.Synthesizer interface using the
// Google Cloud Text-to-Speech API.
package gcptts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lexidrill/lexidrill-api/internal/config"
	"github.com/lexidrill/lexidrill-api/internal/speech"
)

const synthesisTimeout = 30 * time.Second

// Synthesizer renders vocabulary text as MP3 audio via Google Cloud TTS.
// Credentials come from the environment (GOOGLE_APPLICATION_CREDENTIALS)
// or any client options passed in.
type Synthesizer struct {
	logger       *slog.Logger
	client       *texttospeech.Client
	languageCode string
	maxRetries   int
}

// Ensure Synthesizer implements speech.Synthesizer interface
var _ speech.Synthesizer = (*Synthesizer)(nil)

// NewSynthesizer creates a new Text-to-Speech client from the given
// configuration. Extra client options are passed through to the underlying
// API client, which is mainly useful for tests.
func NewSynthesizer(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.SpeechConfig,
	opts ...option.ClientOption,
) (*Synthesizer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	languageCode := cfg.LanguageCode
	if languageCode == "" {
		languageCode = "es-ES"
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &Synthesizer{
		logger:       logger.With(slog.String("component", "tts_synthesizer")),
		client:       client,
		languageCode: languageCode,
		maxRetries:   4,
	}, nil
}

// Synthesize implements speech.Synthesizer.Synthesize
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, speech.ErrEmptyText
	}

	ctx, cancel := context.WithTimeout(ctx, synthesisTimeout)
	defer cancel()

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := s.synthesizeWithRetry(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "speech synthesis failed",
			"error", err,
			"language", s.languageCode)
		return nil, fmt.Errorf("%w: %v", speech.ErrSynthesisFailed, err)
	}

	s.logger.DebugContext(ctx, "speech synthesized",
		"language", s.languageCode,
		"audio_bytes", len(resp.AudioContent))
	return resp.AudioContent, nil
}

// Close implements speech.Synthesizer.Close
func (s *Synthesizer) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// synthesizeWithRetry retries the API call on transient gRPC errors with a
// doubling backoff, capped per attempt.
func (s *Synthesizer) synthesizeWithRetry(
	ctx context.Context,
	req *texttospeechpb.SynthesizeSpeechRequest,
) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	backoff := 500 * time.Millisecond
	var last error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err := s.client.SynthesizeSpeech(ctx, req)
		if err == nil {
			return resp, nil
		}
		last = err

		code := status.Code(err)
		if code != codes.Unavailable && code != codes.ResourceExhausted && code != codes.DeadlineExceeded {
			return nil, err
		}
		if attempt == s.maxRetries {
			break
		}

		s.logger.WarnContext(ctx, "retrying speech synthesis",
			"attempt", attempt+1,
			"code", code.String())

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
		if backoff > 5*time.Second {
			backoff = 5 * time.Second
		}
	}

	return nil, last
}
