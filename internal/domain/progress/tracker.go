package progress

import (
	"errors"
	"time"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// Tracker errors
var (
	// ErrNilCategory is returned when the category is nil.
	ErrNilCategory = errors.New("category cannot be nil")

	// ErrSubModeLocked is returned when a scored attempt is submitted for a
	// sub-mode that was already completed today. The refusal is a no-op:
	// nothing is graded and no state changes.
	ErrSubModeLocked = errors.New("sub-mode already completed today")
)

// Outcome is the full result of a scored attempt: the grade, the updated
// word copies with mastery points applied, and the (possibly advanced)
// category value.
type Outcome struct {
	Result          Result
	Advanced        bool
	UpdatedWords    []domain.Word
	UpdatedCategory domain.Category
}

// Tracker evaluates scored drill attempts against a category's progress
// state. Per (category, sub-mode) pair the state machine has two states,
// unlocked and locked: a perfect scored attempt advances the level, stamps
// the sub-mode's completion time, and thereby locks it; the lock releases
// passively once the calendar date changes, recomputed on every read.
type Tracker interface {
	// SubmitScored grades a scored attempt and applies its consequences.
	// Returns ErrSubModeLocked without grading when the sub-mode was
	// already completed today, so a stale client resubmission can never
	// advance the level twice or re-stamp the timestamp.
	SubmitScored(
		category *domain.Category,
		words []domain.Word,
		answers []string,
		mode domain.SubMode,
		now time.Time,
	) (*Outcome, error)

	// IsLocked reports whether the given sub-mode is locked at the given
	// moment. Sub-modes are independent: completing one never locks or
	// unlocks the other.
	IsLocked(category *domain.Category, mode domain.SubMode, now time.Time) bool
}

// defaultTracker is the standard implementation of the Tracker interface.
type defaultTracker struct {
	params *Params
}

// NewDefaultTracker creates a new Tracker with default parameters.
func NewDefaultTracker() Tracker {
	return &defaultTracker{
		params: NewDefaultParams(),
	}
}

// NewTrackerWithParams creates a new Tracker with custom parameters.
func NewTrackerWithParams(params *Params) Tracker {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultTracker{
		params: params,
	}
}

// SubmitScored implements the Tracker interface.
//
// The pipeline is: lock check, grading, mastery update, then level
// progression. Mastery points apply on every scored attempt; the level
// advances only on a perfect one, and only a perfect one stamps the
// sub-mode's completion timestamp. Non-perfect attempts leave the category
// value untouched apart from being copied into the outcome.
func (t *defaultTracker) SubmitScored(
	category *domain.Category,
	words []domain.Word,
	answers []string,
	mode domain.SubMode,
	now time.Time,
) (*Outcome, error) {
	if category == nil {
		return nil, ErrNilCategory
	}

	if t.IsLocked(category, mode, now) {
		return nil, ErrSubModeLocked
	}

	result, err := Grade(words, answers, mode)
	if err != nil {
		return nil, err
	}

	updatedWords := ApplyResults(words, result.Correctness)

	updatedCategory := *category
	advanced := false
	if result.Perfect() {
		updatedCategory = category.WithAdvancedLevel(mode, now)
		advanced = true
	}

	return &Outcome{
		Result:          result,
		Advanced:        advanced,
		UpdatedWords:    updatedWords,
		UpdatedCategory: updatedCategory,
	}, nil
}

// IsLocked implements the Tracker interface.
func (t *defaultTracker) IsLocked(category *domain.Category, mode domain.SubMode, now time.Time) bool {
	if category == nil {
		return false
	}
	return IsLocked(category.LastCompleted(mode), now, t.params.Location)
}
