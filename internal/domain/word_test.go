package domain

import (
	"errors"
	"testing"
)

func TestNormalizeTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  Gato ", want: "gato"},
		{in: "CAT", want: "cat"},
		{in: "el pájaro", want: "el pájaro"},
		{in: "\tTO RUN\n", want: "to run"},
		{in: "", want: ""},
		{in: "   ", want: ""},
	}

	for _, tc := range tests {
		if got := NormalizeTerm(tc.in); got != tc.want {
			t.Errorf("NormalizeTerm(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewWord(t *testing.T) {
	t.Parallel()

	word, err := NewWord("animals", " Gato ", " CAT ", "  meow  ")
	if err != nil {
		t.Fatalf("NewWord() error = %v", err)
	}

	if word.Headword != "gato" {
		t.Errorf("Headword = %q, want %q", word.Headword, "gato")
	}
	if word.Translation != "cat" {
		t.Errorf("Translation = %q, want %q", word.Translation, "cat")
	}
	if word.Association != "meow" {
		t.Errorf("Association = %q, want %q", word.Association, "meow")
	}
	if word.Points != 0 {
		t.Errorf("Points = %d, want 0", word.Points)
	}
}

func TestNewWordValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		category    string
		headword    string
		translation string
		wantErr     error
	}{
		{name: "empty category", category: "", headword: "gato", translation: "cat", wantErr: ErrWordCategoryEmpty},
		{name: "empty headword", category: "animals", headword: "  ", translation: "cat", wantErr: ErrWordHeadwordEmpty},
		{name: "empty translation", category: "animals", headword: "gato", translation: "", wantErr: ErrWordTranslationEmpty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWord(tc.category, tc.headword, tc.translation, "")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewWord() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateTerms(t *testing.T) {
	t.Parallel()

	word, err := NewWord("animals", "gato", "cat", "")
	if err != nil {
		t.Fatalf("NewWord() error = %v", err)
	}

	if err := word.UpdateTerms(" GATA ", "cat (female)", "hint"); err != nil {
		t.Fatalf("UpdateTerms() error = %v", err)
	}

	if word.Headword != "gata" {
		t.Errorf("Headword = %q, want %q", word.Headword, "gata")
	}
	if word.Translation != "cat (female)" {
		t.Errorf("Translation = %q, want %q", word.Translation, "cat (female)")
	}
	if word.Association != "hint" {
		t.Errorf("Association = %q, want %q", word.Association, "hint")
	}
}

func TestUpdateTermsLeavesWordUnchangedOnError(t *testing.T) {
	t.Parallel()

	word, err := NewWord("animals", "gato", "cat", "meow")
	if err != nil {
		t.Fatalf("NewWord() error = %v", err)
	}

	if err := word.UpdateTerms("  ", "cat", "x"); !errors.Is(err, ErrWordHeadwordEmpty) {
		t.Fatalf("UpdateTerms() error = %v, want ErrWordHeadwordEmpty", err)
	}

	if word.Headword != "gato" || word.Translation != "cat" || word.Association != "meow" {
		t.Error("failed update must not modify the word")
	}
}

func TestExpected(t *testing.T) {
	t.Parallel()

	word, err := NewWord("animals", "gato", "cat", "")
	if err != nil {
		t.Fatalf("NewWord() error = %v", err)
	}

	if got := word.Expected(SubModeForward); got != "cat" {
		t.Errorf("Expected(forward) = %q, want %q", got, "cat")
	}
	if got := word.Expected(SubModeReverse); got != "gato" {
		t.Errorf("Expected(reverse) = %q, want %q", got, "gato")
	}
}
