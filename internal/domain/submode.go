package domain

// SubMode identifies one of the two graded translation directions of a
// drill. Each sub-mode carries its own grade record and its own daily lock;
// completing one never affects the other.
type SubMode string

// Possible sub-mode values
const (
	// SubModeForward prompts with the headword and expects the translation.
	SubModeForward SubMode = "forward"

	// SubModeReverse prompts with the translation and expects the headword.
	SubModeReverse SubMode = "reverse"
)

// ParseSubMode converts a string into a SubMode.
// Returns ErrInvalidSubMode for anything other than the two known values.
func ParseSubMode(s string) (SubMode, error) {
	mode := SubMode(s)
	if !mode.Valid() {
		return "", ErrInvalidSubMode
	}
	return mode, nil
}

// Valid reports whether the sub-mode is one of the two graded directions.
func (m SubMode) Valid() bool {
	switch m {
	case SubModeForward, SubModeReverse:
		return true
	default:
		return false
	}
}
