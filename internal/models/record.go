package models

// StudySession is a completed timed activity as the backend returns
// it. Instants stay as ISO-8601 strings until aggregation so a single
// malformed record can be skipped instead of failing a whole decode.
type StudySession struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subjectId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Note      string `json:"note,omitempty"`
}

// WordLog is a completed vocabulary activity. Date is the calendar day
// the entry is attributed to. StartTime/EndTime are present only when
// the entry came out of a timed session; a count-only manual log
// carries neither and contributes nothing to time totals.
type WordLog struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subjectId"`
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Note      string `json:"note,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// Timed reports whether the log carries its own time span.
func (w WordLog) Timed() bool {
	return w.StartTime != "" && w.EndTime != ""
}

type NewStudySession struct {
	SubjectID int64  `json:"subjectId" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Note      string `json:"note,omitempty" validate:"max=500"`
}

type NewWordLog struct {
	SubjectID int64  `json:"subjectId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Count     int    `json:"count" validate:"gt=0"`
	Note      string `json:"note,omitempty" validate:"max=500"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}
