package progress

import (
	"testing"
)

func TestIsCorrect(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name      string
		expected  string
		submitted string
		want      bool
	}{
		{
			name:      "exact match",
			expected:  "gato",
			submitted: "gato",
			want:      true,
		},
		{
			name:      "case-folded match",
			expected:  "gato",
			submitted: "GaTo",
			want:      true,
		},
		{
			name:      "surrounding whitespace is trimmed",
			expected:  "gato",
			submitted: "  gato\t",
			want:      true,
		},
		{
			name:      "wrong answer",
			expected:  "gato",
			submitted: "perro",
			want:      false,
		},
		{
			name:      "empty submission is incorrect",
			expected:  "gato",
			submitted: "",
			want:      false,
		},
		{
			name:      "whitespace-only submission is incorrect",
			expected:  "gato",
			submitted: "   ",
			want:      false,
		},
		{
			name:      "empty submission never matches empty expected",
			expected:  "",
			submitted: "",
			want:      false,
		},
		{
			name:      "whitespace submission never matches empty expected",
			expected:  " ",
			submitted: "  ",
			want:      false,
		},
		{
			name:      "no fuzzy matching",
			expected:  "gato",
			submitted: "gatos",
			want:      false,
		},
		{
			name:      "no accent folding beyond case",
			expected:  "árbol",
			submitted: "arbol",
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCorrect(tc.expected, tc.submitted)

			if got != tc.want {
				t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.expected, tc.submitted, got, tc.want)
			}
		})
	}
}
