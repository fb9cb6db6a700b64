package timespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want Span
	}{
		{
			name: "forty five minutes",
			end:  base.Add(45 * time.Minute),
			want: Span{Seconds: 2700, Minutes: 45, RemainderSeconds: 0},
		},
		{
			name: "minute and a half",
			end:  base.Add(90 * time.Second),
			want: Span{Seconds: 90, Minutes: 1, RemainderSeconds: 30},
		},
		{
			name: "sub second rounds up",
			end:  base.Add(2500 * time.Millisecond),
			want: Span{Seconds: 3, Minutes: 0, RemainderSeconds: 3},
		},
		{
			name: "sub second rounds down",
			end:  base.Add(2400 * time.Millisecond),
			want: Span{Seconds: 2, Minutes: 0, RemainderSeconds: 2},
		},
		{
			name: "zero",
			end:  base,
			want: Span{},
		},
		{
			name: "negative span passes through",
			end:  base.Add(-90 * time.Second),
			want: Span{Seconds: -90, Minutes: -1, RemainderSeconds: -30},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Between(base, tt.end))
		})
	}
}

func TestBetween_MinutesAreFlooredSeconds(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	for _, d := range []time.Duration{
		0, time.Second, 59 * time.Second, time.Minute,
		61 * time.Second, 2*time.Hour + 31*time.Minute + 7*time.Second,
	} {
		span := Between(start, start.Add(d))
		assert.GreaterOrEqual(t, span.Seconds, 0)
		assert.Equal(t, span.Seconds/60, span.Minutes)
		assert.Equal(t, span.Minutes*60+span.RemainderSeconds, span.Seconds)
	}
}

func TestMinutes_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, Minutes(start, start.Add(10*time.Minute)))
	assert.Equal(t, 10, Minutes(start, start.Add(10*time.Minute+29*time.Second)))
	assert.Equal(t, 11, Minutes(start, start.Add(10*time.Minute+30*time.Second)))

	// The rounded-minutes path and the floored Span.Minutes path may
	// disagree by one at a half-minute boundary; both are kept.
	halfMinute := start.Add(30 * time.Second)
	assert.Equal(t, 1, Minutes(start, halfMinute))
	assert.Equal(t, 0, Between(start, halfMinute).Minutes)
}

func TestDayKey_KeepsInstantOffset(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-31", DayKey(utc))

	// The same instant in UTC+9 already belongs to the next day.
	tokyo := utc.In(time.FixedZone("JST", 9*3600))
	assert.Equal(t, "2024-06-01", DayKey(tokyo))
}

func TestClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00:00", Clock(0))
	assert.Equal(t, "00:00:59", Clock(59))
	assert.Equal(t, "00:01:00", Clock(60))
	assert.Equal(t, "01:01:05", Clock(3665))
	assert.Equal(t, "27:46:40", Clock(100000))
	assert.Equal(t, "00:00:00", Clock(-5))
}
