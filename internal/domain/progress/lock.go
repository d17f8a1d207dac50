package progress

import (
	"time"
)

// IsLocked reports whether a graded sub-mode is still locked at the given
// moment, based on when it was last successfully completed.
//
// The lock is a calendar-date comparison in the reference location, not a
// rolling 24-hour cooldown: completing at 23:59 and checking at 00:01 the
// next minute is already unlocked, while completing at 00:01 keeps the
// sub-mode locked until the following midnight. That midnight-reset
// behavior is the intended daily-quota semantics and must not be replaced
// with a duration check.
//
// A nil lastCompletedAt means the sub-mode was never completed and is
// always unlocked. A nil location falls back to UTC.
func IsLocked(lastCompletedAt *time.Time, now time.Time, loc *time.Location) bool {
	if lastCompletedAt == nil {
		return false
	}

	if loc == nil {
		loc = time.UTC
	}

	y1, m1, d1 := lastCompletedAt.In(loc).Date()
	y2, m2, d2 := now.In(loc).Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}
