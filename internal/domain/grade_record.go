package domain

import "time"

// GradeRecord holds the most recent percentage score a category earned in
// each graded sub-mode. There is one logical record per category; a new
// submission for a sub-mode overwrites that sub-mode's percent rather than
// appending history. A nil percent means the sub-mode was never submitted.
type GradeRecord struct {
	Category       string     `json:"category"`
	ForwardPercent *int       `json:"forward_percent"`
	ReversePercent *int       `json:"reverse_percent"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Percent returns the recorded percent for the given sub-mode, or nil if
// that sub-mode has never been submitted.
func (g *GradeRecord) Percent(mode SubMode) *int {
	switch mode {
	case SubModeForward:
		return g.ForwardPercent
	case SubModeReverse:
		return g.ReversePercent
	default:
		return nil
	}
}
