package progress

import (
	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// ApplyResults awards mastery points for one graded attempt: each word
// whose answer was correct gains exactly one point, the rest are returned
// unchanged. Points never decrease.
//
// The input slice is not modified; updated copies are returned in item
// order. Point accumulation is independent of level progression: it
// applies on every scored attempt whether or not the attempt was perfect.
//
// correctness must come from grading the same words; a shorter vector
// leaves the trailing words untouched.
func ApplyResults(words []domain.Word, correctness []bool) []domain.Word {
	updated := make([]domain.Word, len(words))
	copy(updated, words)

	for i := range updated {
		if i < len(correctness) && correctness[i] {
			updated[i].Points++
		}
	}

	return updated
}
