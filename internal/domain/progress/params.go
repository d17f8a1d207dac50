package progress

import "time"

// Params defines the configurable policy knobs of the progress engine.
type Params struct {
	// Location is the fixed reference time zone for the calendar-day lock.
	// Every lock decision uses this zone so the daily reset happens at the
	// same wall-clock midnight regardless of where a request comes from.
	Location *time.Location

	// PracticeAwardsPoints controls whether correct answers in an ungraded
	// practice run also increment mastery points. Scored attempts always
	// award points; this flag only widens the policy to practice runs.
	PracticeAwardsPoints bool
}

// NewDefaultParams creates a new Params instance with default values:
// UTC lock resets and no points for practice runs.
func NewDefaultParams() *Params {
	return &Params{
		Location:             time.UTC,
		PracticeAwardsPoints: false,
	}
}
