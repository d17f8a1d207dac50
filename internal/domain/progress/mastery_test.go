package progress

import (
	"testing"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

func TestApplyResults(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name        string
		points      []int
		correctness []bool
		wantPoints  []int
	}{
		{
			name:        "increments only correct positions",
			points:      []int{0, 3, 7},
			correctness: []bool{true, false, true},
			wantPoints:  []int{1, 3, 8},
		},
		{
			name:        "no increments when nothing correct",
			points:      []int{2, 2},
			correctness: []bool{false, false},
			wantPoints:  []int{2, 2},
		},
		{
			name:        "short correctness vector leaves tail untouched",
			points:      []int{1, 1, 1},
			correctness: []bool{true},
			wantPoints:  []int{2, 1, 1},
		},
		{
			name:        "empty input",
			points:      nil,
			correctness: nil,
			wantPoints:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			words := make([]domain.Word, len(tc.points))
			for i, p := range tc.points {
				words[i] = testWord("cat", "gato")
				words[i].Points = p
			}

			updated := ApplyResults(words, tc.correctness)

			if len(updated) != len(tc.wantPoints) {
				t.Fatalf("Expected %d words, got %d", len(tc.wantPoints), len(updated))
			}

			for i, want := range tc.wantPoints {
				if updated[i].Points != want {
					t.Errorf("updated[%d].Points = %d, want %d", i, updated[i].Points, want)
				}
			}

			// The input slice must keep its original points.
			for i, orig := range tc.points {
				if words[i].Points != orig {
					t.Errorf("ApplyResults mutated words[%d].Points: got %d, want %d",
						i, words[i].Points, orig)
				}
			}
		})
	}
}
