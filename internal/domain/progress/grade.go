package progress

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// Grading errors
var (
	// ErrEmptyAttempt is returned when an attempt contains no items.
	ErrEmptyAttempt = errors.New("attempt must contain at least one item")

	// ErrAnswerCountMismatch is returned when the number of answers does not
	// match the number of items. This is a caller defect, not a user error.
	ErrAnswerCountMismatch = errors.New("answer count does not match item count")
)

// Result is the outcome of grading one attempt: a per-item correctness
// vector in item order and the overall percentage score.
type Result struct {
	Correctness []bool `json:"correctness"`
	Percent     int    `json:"percent"`
}

// Perfect reports whether every item in the attempt was answered correctly.
func (r Result) Perfect() bool {
	return len(r.Correctness) > 0 && lo.Count(r.Correctness, false) == 0
}

// Grade scores a full attempt: each answer is compared against the
// word at the same position, using the expected side for the given
// sub-mode (translation when drilling forward, headword in reverse).
//
// The percent is round-half-up of correct/total*100, so 2 of 3 grades
// as 67. Grade is a pure function: it never mutates its inputs and has
// no side effects. Malformed attempts (empty, or with a mismatched
// answer count) are rejected before any grading happens.
func Grade(words []domain.Word, answers []string, mode domain.SubMode) (Result, error) {
	if !mode.Valid() {
		return Result{}, domain.ErrInvalidSubMode
	}

	if len(words) == 0 {
		return Result{}, ErrEmptyAttempt
	}

	if len(answers) != len(words) {
		return Result{}, ErrAnswerCountMismatch
	}

	correctness := make([]bool, len(words))
	for i := range words {
		correctness[i] = IsCorrect(words[i].Expected(mode), answers[i])
	}

	correct := lo.Count(correctness, true)
	percent := int(math.Round(float64(correct) / float64(len(words)) * 100))

	return Result{
		Correctness: correctness,
		Percent:     percent,
	}, nil
}
