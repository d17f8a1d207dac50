package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewCategory(t *testing.T) {
	t.Parallel()

	category, err := NewCategory("  animals  ")
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if category.Name != "animals" {
		t.Errorf("Name = %q, want %q", category.Name, "animals")
	}
	if category.Level != 0 {
		t.Errorf("Level = %d, want 0", category.Level)
	}
	if category.LastCompletedForward != nil || category.LastCompletedReverse != nil {
		t.Error("new category should have no completion timestamps")
	}
}

func TestNewCategoryEmptyName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewCategory(name); !errors.Is(err, ErrCategoryNameEmpty) {
			t.Errorf("NewCategory(%q) error = %v, want ErrCategoryNameEmpty", name, err)
		}
	}
}

func TestCategoryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "valid",
			category: Category{Name: "animals", Level: 3},
			wantErr:  nil,
		},
		{
			name:     "empty name",
			category: Category{Name: " ", Level: 0},
			wantErr:  ErrCategoryNameEmpty,
		},
		{
			name:     "negative level",
			category: Category{Name: "animals", Level: -1},
			wantErr:  ErrCategoryLevelNegative,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.category.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestWithAdvancedLevel(t *testing.T) {
	t.Parallel()

	category, err := NewCategory("animals")
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	category.Level = 2

	now := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	next := category.WithAdvancedLevel(SubModeForward, now)

	if next.Level != 3 {
		t.Errorf("Level = %d, want 3", next.Level)
	}
	if next.LastCompletedForward == nil || !next.LastCompletedForward.Equal(now) {
		t.Errorf("LastCompletedForward = %v, want %v", next.LastCompletedForward, now)
	}
	if next.LastCompletedReverse != nil {
		t.Error("reverse timestamp should stay untouched")
	}

	// Receiver must not change.
	if category.Level != 2 || category.LastCompletedForward != nil {
		t.Error("WithAdvancedLevel modified the receiver")
	}
}

func TestWithAdvancedLevelTimestampOnlyMovesForward(t *testing.T) {
	t.Parallel()

	later := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	category := Category{Name: "animals", Level: 1, LastCompletedReverse: &later}

	earlier := later.Add(-2 * time.Hour)
	next := category.WithAdvancedLevel(SubModeReverse, earlier)

	if next.Level != 2 {
		t.Errorf("Level = %d, want 2", next.Level)
	}
	if !next.LastCompletedReverse.Equal(later) {
		t.Errorf("LastCompletedReverse = %v, want unchanged %v", next.LastCompletedReverse, later)
	}
}

func TestLastCompleted(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	category := Category{Name: "animals", LastCompletedForward: &stamp}

	if got := category.LastCompleted(SubModeForward); got == nil || !got.Equal(stamp) {
		t.Errorf("LastCompleted(forward) = %v, want %v", got, stamp)
	}
	if got := category.LastCompleted(SubModeReverse); got != nil {
		t.Errorf("LastCompleted(reverse) = %v, want nil", got)
	}
	if got := category.LastCompleted(SubMode("sideways")); got != nil {
		t.Errorf("LastCompleted(invalid) = %v, want nil", got)
	}
}
