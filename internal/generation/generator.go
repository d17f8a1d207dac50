package generation

import (
	"context"
)

// Suggestion is a single proposed vocabulary entry: a headword in the
// studied language and its translation.
type Suggestion struct {
	Headword    string `json:"headword"`
	Translation string `json:"translation"`
}

// Generator defines the interface for generating vocabulary suggestions.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// SuggestWords proposes up to count new vocabulary entries fitting the
	// category's theme. Entries whose headwords appear in existing are
	// excluded so the drill list does not fill up with duplicates.
	//
	// Returns ErrNotConfigured when no LLM credentials are set, and the
	// other package errors for the respective failure modes.
	SuggestWords(ctx context.Context, category string, existing []string, count int) ([]Suggestion, error)

	// SuggestHeadword proposes the headword for a translation the learner
	// already knows, useful when adding a word from the native side.
	SuggestHeadword(ctx context.Context, category, translation string) (string, error)
}
