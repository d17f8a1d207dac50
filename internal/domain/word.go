package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordCategoryEmpty is returned when a word's category name is empty.
	ErrWordCategoryEmpty = errors.New("word category cannot be empty")

	// ErrWordHeadwordEmpty is returned when a word's headword is empty after normalization.
	ErrWordHeadwordEmpty = errors.New("word headword cannot be empty")

	// ErrWordTranslationEmpty is returned when a word's translation is empty after normalization.
	ErrWordTranslationEmpty = errors.New("word translation cannot be empty")

	// ErrWordPointsNegative is returned when a word's points counter is below zero.
	ErrWordPointsNegative = errors.New("word points cannot be negative")
)

// Word is a single vocabulary entry inside a category. Headword and
// translation are stored normalized so drill comparisons are stable.
// Points is the mastery counter: it only ever increases, by one per
// correct answer in a scored attempt.
type Word struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Headword    string    `json:"headword"`
	Translation string    `json:"translation"`
	Association string    `json:"association,omitempty"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeTerm trims surrounding whitespace and case-folds a headword,
// translation, or submitted answer. Every comparison in the drill engine
// happens on normalized terms.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewWord creates a new Word in the given category with zero points.
// Headword and translation are normalized; returns an error if either is
// empty afterwards. The association hint is kept as typed.
func NewWord(category, headword, translation, association string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:          uuid.New(),
		Category:    strings.TrimSpace(category),
		Headword:    NormalizeTerm(headword),
		Translation: NormalizeTerm(translation),
		Association: strings.TrimSpace(association),
		Points:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.Category == "" {
		return ErrWordCategoryEmpty
	}

	if w.Headword == "" {
		return ErrWordHeadwordEmpty
	}

	if w.Translation == "" {
		return ErrWordTranslationEmpty
	}

	if w.Points < 0 {
		return ErrWordPointsNegative
	}

	return nil
}

// UpdateTerms replaces the word's headword, translation, and association,
// normalizing the terms and refreshing the UpdatedAt timestamp.
// Returns an error if either required term is empty after normalization;
// the word is left unchanged in that case.
func (w *Word) UpdateTerms(headword, translation, association string) error {
	next := *w
	next.Headword = NormalizeTerm(headword)
	next.Translation = NormalizeTerm(translation)
	next.Association = strings.TrimSpace(association)

	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*w = next
	return nil
}

// Expected returns the value a submitted answer is compared against for the
// given sub-mode: the translation when drilling forward, the headword when
// drilling in reverse.
func (w *Word) Expected(mode SubMode) string {
	if mode == SubModeReverse {
		return w.Headword
	}
	return w.Translation
}
