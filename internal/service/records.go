package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/pkg/validator"

	"go.uber.org/zap"
)

var (
	// ErrEndBeforeStart blocks a session whose span would be negative.
	ErrEndBeforeStart = errors.New("end time is before start time")
)

// PendingCount is the sub-state between stopping a COUNT-type timer
// and committing the word log. The caller holds it until a count is
// entered; dropping it (cancel) discards the span with nothing
// persisted.
type PendingCount struct {
	Subject models.Subject
	Start   time.Time
	End     time.Time
}

// LogS commits study sessions and word logs, validating client-side
// before any network call so a bad form never leaves the machine.
type LogS struct {
	api RecordAPII
	log *zap.Logger
}

func NewLogService(api RecordAPII, log *zap.Logger) *LogS {
	return &LogS{api: api, log: log}
}

// LogSession commits a timed study record from explicit instants
// (manual entry or a stopped DURATION timer).
func (s *LogS) LogSession(ctx context.Context, input models.NewStudySession) (models.StudySession, error) {
	if err := validator.ValidateStruct(input); err != nil {
		return models.StudySession{}, err
	}

	start, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("invalid end time: %w", err)
	}
	if end.Before(start) {
		return models.StudySession{}, ErrEndBeforeStart
	}

	created, err := s.api.CreateStudySession(ctx, input)
	if err != nil {
		return models.StudySession{}, err
	}

	s.log.Info("study session saved",
		zap.Int64("subjectId", created.SubjectID),
		zap.String("startTime", created.StartTime))
	return created, nil
}

// CommitTimedSession saves the span of a stopped DURATION timer.
func (s *LogS) CommitTimedSession(ctx context.Context, subject models.Subject, start, end time.Time, note string) (models.StudySession, error) {
	return s.LogSession(ctx, models.NewStudySession{
		SubjectID: subject.ID,
		StartTime: start.Format(time.RFC3339Nano),
		EndTime:   end.Format(time.RFC3339Nano),
		Note:      note,
	})
}

// LogWords commits a count-only manual word log for a date.
func (s *LogS) LogWords(ctx context.Context, input models.NewWordLog) (models.WordLog, error) {
	if err := validator.ValidateStruct(input); err != nil {
		return models.WordLog{}, err
	}

	created, err := s.api.CreateWordLog(ctx, input)
	if err != nil {
		return models.WordLog{}, err
	}

	s.log.Info("word log saved",
		zap.Int64("subjectId", created.SubjectID),
		zap.Int("count", created.Count))
	return created, nil
}

// CommitTimedWords turns a pending count entry into a word log that
// carries the timer's span.
func (s *LogS) CommitTimedWords(ctx context.Context, pending PendingCount, count int, note string) (models.WordLog, error) {
	return s.LogWords(ctx, models.NewWordLog{
		SubjectID: pending.Subject.ID,
		Date:      pending.End.Format(time.DateOnly),
		Count:     count,
		Note:      note,
		StartTime: pending.Start.Format(time.RFC3339Nano),
		EndTime:   pending.End.Format(time.RFC3339Nano),
	})
}
