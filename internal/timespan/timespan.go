package timespan

import (
	"fmt"
	"math"
	"time"
)

// Span is the duration between two instants, broken down the way the
// views display it: whole seconds (rounded from milliseconds), whole
// minutes and the seconds left over past the last full minute.
type Span struct {
	Seconds          int
	Minutes          int
	RemainderSeconds int
}

// Between computes the span from start to end. Seconds are rounded,
// not truncated, from milliseconds; minutes are Seconds/60. The two do
// not have to agree at exact half-minute boundaries. A negative span
// (end before start) passes through with negative fields; callers must
// not assume non-negativity.
func Between(start, end time.Time) Span {
	ms := end.Sub(start).Milliseconds()
	secs := int(math.Round(float64(ms) / 1000.0))
	return Span{
		Seconds:          secs,
		Minutes:          secs / 60,
		RemainderSeconds: secs % 60,
	}
}

// Minutes rounds the span from start to end straight to whole minutes.
// The day and subject totals use this, while record rows use
// Between().Minutes; the two deliberately disagree by at most one at
// half-minute boundaries.
func Minutes(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	return int(math.Round(float64(ms) / 1000.0 / 60.0))
}

// DayKey returns the calendar-day bucket key for an instant, in the
// instant's own offset.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Clock formats elapsed seconds as HH:MM:SS for the running timer.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
