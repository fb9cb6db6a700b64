package models

import "time"

// TimerState is the single in-progress timed activity tracked on this
// machine. SubjectType is captured at start so the type is known after
// a restart even before the subject list has re-loaded.
type TimerState struct {
	Active      bool
	Start       time.Time
	SubjectID   int64
	SubjectType StudyType
}
