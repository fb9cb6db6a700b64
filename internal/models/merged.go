package models

import (
	"time"

	"github.com/yukimo/studytrack.git/internal/timespan"
)

type RecordKind string

const (
	RecordStudy RecordKind = "study"
	RecordWord  RecordKind = "word"
)

// MergedRecord is the unified read-only projection of a StudySession
// or WordLog used by the history and day-detail views. Kind is the
// discriminant; consumers switch on it exhaustively. CompletedAt
// drives sort order: session end for study records, span end if
// present else the logical date for word records.
type MergedRecord struct {
	Kind        RecordKind
	ID          int64
	SubjectID   int64
	SubjectName string
	ColorHex    string
	CompletedAt time.Time
	HasSpan     bool
	StartTime   time.Time
	EndTime     time.Time
	Span        timespan.Span
	Count       int
	Note        string
}

// DayTotal is one calendar day's aggregate bucket.
type DayTotal struct {
	Minutes int
	Words   int
}

// SubjectProgress is a subject's totals for the current day, rendered
// against its daily target on the dashboard.
type SubjectProgress struct {
	Subject      Subject
	TodayMinutes int
	TodayWords   int
}

// Percent is progress toward the daily target, capped at 100. It is
// meaningful only when the target is set; callers hide it otherwise.
func (p SubjectProgress) Percent() float64 {
	if p.Subject.DailyTarget <= 0 {
		return 0
	}
	actual := p.TodayMinutes
	if p.Subject.StudyType == StudyCount {
		actual = p.TodayWords
	}
	pct := float64(actual) / float64(p.Subject.DailyTarget) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
