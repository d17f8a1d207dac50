package domain

import (
	"errors"
	"strings"
	"time"
)

// Category-specific validation errors
var (
	// ErrCategoryNameEmpty is returned when a category name is empty after trimming.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryLevelNegative is returned when a category's level is below zero.
	ErrCategoryLevelNegative = errors.New("category level cannot be negative")
)

// Category groups a user's words and tracks drill progress for them.
// Level is the proficiency rank: it starts at zero and only ever moves up
// through the progress engine. Each graded sub-mode keeps its own completion
// timestamp, which drives the once-per-calendar-day lock.
type Category struct {
	Name                  string     `json:"name"`
	Level                 int        `json:"level"`
	LastCompletedForward  *time.Time `json:"last_completed_forward,omitempty"`
	LastCompletedReverse  *time.Time `json:"last_completed_reverse,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// NewCategory creates a new Category with the given name at level zero.
// The name is trimmed; returns an error if it is empty afterwards.
func NewCategory(name string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		Name:      strings.TrimSpace(name),
		Level:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameEmpty
	}

	if c.Level < 0 {
		return ErrCategoryLevelNegative
	}

	return nil
}

// LastCompleted returns the completion timestamp for the given sub-mode,
// or nil if the sub-mode has never been completed.
func (c *Category) LastCompleted(mode SubMode) *time.Time {
	switch mode {
	case SubModeForward:
		return c.LastCompletedForward
	case SubModeReverse:
		return c.LastCompletedReverse
	default:
		return nil
	}
}

// WithAdvancedLevel returns a copy of the category with the level advanced
// by one and the given sub-mode's completion timestamp stamped to now.
// The receiver is not modified; progress transitions always produce new
// values so concurrent readers never observe a half-applied update.
// The timestamp only moves forward: a stale clock never rewinds it.
func (c *Category) WithAdvancedLevel(mode SubMode, now time.Time) Category {
	next := *c
	next.Level = c.Level + 1
	next.UpdatedAt = now

	stamp := now
	switch mode {
	case SubModeForward:
		if c.LastCompletedForward == nil || now.After(*c.LastCompletedForward) {
			next.LastCompletedForward = &stamp
		}
	case SubModeReverse:
		if c.LastCompletedReverse == nil || now.After(*c.LastCompletedReverse) {
			next.LastCompletedReverse = &stamp
		}
	}

	return next
}
