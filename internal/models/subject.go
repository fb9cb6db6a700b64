package models

type StudyType string

const (
	StudyDuration StudyType = "DURATION"
	StudyCount    StudyType = "COUNT"
)

// Subject is a user-defined tracked activity. The identifier is
// assigned by the backend and never changes; Archived soft-deletes a
// subject without breaking history references.
type Subject struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ColorHex    string    `json:"colorHex,omitempty"`
	StudyType   StudyType `json:"studyType"`
	DailyTarget int       `json:"dailyTarget"`
	Archived    bool      `json:"archived"`
}

// Color returns the subject color with the consumer-side default
// applied.
func (s Subject) Color(fallback string) string {
	if s.ColorHex != "" {
		return s.ColorHex
	}
	return fallback
}

type NewSubject struct {
	Name        string    `json:"name" validate:"required"`
	ColorHex    string    `json:"colorHex,omitempty" validate:"omitempty,hexcolor"`
	StudyType   StudyType `json:"studyType" validate:"oneof=DURATION COUNT"`
	DailyTarget int       `json:"dailyTarget" validate:"min=0"`
	Archived    bool      `json:"archived"`
}
