package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/lexidrill/lexidrill-api/internal/config"
	"github.com/lexidrill/lexidrill-api/internal/generation"
)

// ErrEmptyCategory is returned when a suggestion is requested without a
// category name to theme it.
var ErrEmptyCategory = errors.New("category cannot be empty")

// ErrEmptyTranslation is returned when a headword lookup is requested
// without a translation.
var ErrEmptyTranslation = errors.New("translation cannot be empty")

const suggestWordsTemplate = `You are helping a learner build a vocabulary drill list.
Propose {{.Count}} new vocabulary entries for the topic "{{.Category}}".
Each entry has a "headword" in the studied language and a "translation".
{{if .Existing}}Do not repeat any of these headwords: {{.Existing}}.{{end}}
Respond with JSON only, in the shape:
{"suggestions": [{"headword": "...", "translation": "..."}]}`

const suggestHeadwordTemplate = `You are helping a learner build a vocabulary drill list.
For the topic "{{.Category}}", give the headword in the studied language
whose translation is "{{.Translation}}".
Respond with JSON only, in the shape: {"headword": "..."}`

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to propose vocabulary entries.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// parsed prompt templates
	wordsTemplate    *template.Template
	headwordTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// Ensure GeminiGenerator implements generation.Generator interface
var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
// It validates the configuration and initializes the underlying API client.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	wordsTemplate, err := template.New("suggest_words").Parse(suggestWordsTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse suggestion template: %v",
			generation.ErrInvalidConfig, err)
	}

	headwordTemplate, err := template.New("suggest_headword").Parse(suggestHeadwordTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse headword template: %v",
			generation.ErrInvalidConfig, err)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:           logger.With(slog.String("component", "gemini_generator")),
		config:           cfg,
		wordsTemplate:    wordsTemplate,
		headwordTemplate: headwordTemplate,
		client:           client,
		model:            cfg.ModelName,
	}, nil
}

// SuggestWords implements generation.Generator.SuggestWords
func (g *GeminiGenerator) SuggestWords(
	ctx context.Context,
	category string,
	existing []string,
	count int,
) ([]generation.Suggestion, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrEmptyCategory
	}
	if count <= 0 {
		count = 5
	}

	prompt, err := g.renderPrompt(g.wordsTemplate, promptData{
		Category: category,
		Existing: strings.Join(existing, ", "),
		Count:    count,
	})
	if err != nil {
		return nil, err
	}

	text, err := g.callGeminiWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed suggestionsResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: no suggestions in response", generation.ErrInvalidResponse)
	}

	// The model is told to avoid existing headwords but does not always
	// comply, so filter again here.
	known := make(map[string]struct{}, len(existing))
	for _, headword := range existing {
		known[strings.ToLower(strings.TrimSpace(headword))] = struct{}{}
	}

	suggestions := make([]generation.Suggestion, 0, len(parsed.Suggestions))
	for i, s := range parsed.Suggestions {
		if s.Headword == "" || s.Translation == "" {
			return nil, fmt.Errorf("%w: suggestion %d missing headword or translation",
				generation.ErrInvalidResponse, i)
		}
		if _, dup := known[strings.ToLower(strings.TrimSpace(s.Headword))]; dup {
			continue
		}
		suggestions = append(suggestions, generation.Suggestion{
			Headword:    s.Headword,
			Translation: s.Translation,
		})
	}

	g.logger.InfoContext(ctx, "generated vocabulary suggestions",
		"category", category,
		"count", len(suggestions))
	return suggestions, nil
}

// SuggestHeadword implements generation.Generator.SuggestHeadword
func (g *GeminiGenerator) SuggestHeadword(ctx context.Context, category, translation string) (string, error) {
	if strings.TrimSpace(category) == "" {
		return "", ErrEmptyCategory
	}
	if strings.TrimSpace(translation) == "" {
		return "", ErrEmptyTranslation
	}

	prompt, err := g.renderPrompt(g.headwordTemplate, promptData{
		Category:    category,
		Translation: translation,
	})
	if err != nil {
		return "", err
	}

	text, err := g.callGeminiWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}

	var parsed headwordResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}
	if parsed.Headword == "" {
		return "", fmt.Errorf("%w: empty headword in response", generation.ErrInvalidResponse)
	}

	g.logger.InfoContext(ctx, "generated headword suggestion",
		"category", category)
	return parsed.Headword, nil
}

// renderPrompt executes a prompt template with the given data.
func (g *GeminiGenerator) renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// callGeminiWithRetry makes a call to the Gemini API with exponential backoff retry logic.
//
// It attempts the call up to config.MaxRetries additional times, backing off
// exponentially with jitter between retries for transient errors. Permanent
// errors (blocked content, malformed responses) are returned immediately.
// The returned string is the model's text output with any surrounding
// Markdown code fences stripped.
func (g *GeminiGenerator) callGeminiWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}
	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)

		var isTransient bool
		switch {
		case err != nil:
			// Network and server errors are assumed transient.
			isTransient = true
		case resp == nil || len(resp.Candidates) == 0:
			err = fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
		case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
			err = fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
		default:
			text := stripCodeFences(resp.Text())
			if text == "" {
				err = fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
				break
			}
			g.logger.DebugContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !isTransient {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// stripCodeFences removes a surrounding Markdown code fence from the
// model output. Gemini often wraps JSON answers in ```json blocks even
// when asked for raw JSON.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
