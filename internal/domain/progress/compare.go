// Package progress implements the drill progress engine: answer
// comparison, attempt grading, mastery point accumulation, the
// once-per-calendar-day sub-mode lock, and the tracker that ties them to a
// category's proficiency level.
package progress

import (
	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// IsCorrect compares a submitted answer against the expected value for one
// drill item. Both sides are trimmed and case-folded before comparison.
//
// An answer that is empty after trimming is never correct, even when the
// expected value is also empty: a blank submission means the user gave no
// answer, which is a distinct outcome from a wrong answer but scores the
// same. Comparison is exact after normalization; there is no partial
// credit and no accent folding.
func IsCorrect(expected, submitted string) bool {
	answer := domain.NormalizeTerm(submitted)
	if answer == "" {
		return false
	}
	return answer == domain.NormalizeTerm(expected)
}
