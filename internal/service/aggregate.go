package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/storage/cache"
	"github.com/yukimo/studytrack.git/internal/timespan"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultStudyColor = "#3b82f6"
	defaultWordColor  = "#22c55e"
)

// Intensity is the heatmap bucket for one day's study minutes. Word
// counts never influence the bucket; they are shown as auxiliary text
// only.
type Intensity string

const (
	IntensityNone     Intensity = "none"
	IntensityLow      Intensity = "low"
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very-high"
	IntensityExtreme  Intensity = "extreme"
)

// IntensityFor buckets daily minutes. Lower bounds are inclusive.
func IntensityFor(minutes int) Intensity {
	switch {
	case minutes <= 0:
		return IntensityNone
	case minutes < 60:
		return IntensityLow
	case minutes < 120:
		return IntensityMedium
	case minutes < 180:
		return IntensityHigh
	case minutes < 240:
		return IntensityVeryHigh
	default:
		return IntensityExtreme
	}
}

// AggregateResult is everything the dashboard, calendar and history
// views consume for one date range.
type AggregateResult struct {
	Days    map[string]models.DayTotal
	Records []models.MergedRecord
}

// DayDetail is one calendar day drilled down.
type DayDetail struct {
	Date    string
	Total   models.DayTotal
	Records []models.MergedRecord
}

// Overview is the dashboard payload for the current day.
type Overview struct {
	TotalMinutes int
	TotalWords   int
	Subjects     []models.SubjectProgress
}

type AggregateS struct {
	api      APII
	subjects *cache.Subjects
	log      *zap.Logger
	now      func() time.Time
}

func NewAggregateService(api APII, subjects *cache.Subjects, log *zap.Logger) *AggregateS {
	return &AggregateS{
		api:      api,
		subjects: subjects,
		log:      log,
		now:      time.Now,
	}
}

// Aggregate merges raw sessions and word logs into per-day totals and
// a chronological record list. Pure apart from warn logs: identical
// inputs give identical outputs, and totals do not depend on input
// order. Records whose subject is absent from subjects contribute to
// nothing; records with malformed instants are skipped one at a time.
func (s *AggregateS) Aggregate(sessions []models.StudySession, logs []models.WordLog, subjects []models.Subject) AggregateResult {
	byID := make(map[int64]models.Subject, len(subjects))
	for _, sub := range subjects {
		byID[sub.ID] = sub
	}

	result := AggregateResult{
		Days:    make(map[string]models.DayTotal),
		Records: make([]models.MergedRecord, 0, len(sessions)+len(logs)),
	}

	for _, sess := range sessions {
		subject, ok := byID[sess.SubjectID]
		if !ok {
			continue
		}

		start, err := parseInstant(sess.StartTime)
		if err != nil {
			s.log.Warn("skipping study session with bad start instant",
				zap.Int64("id", sess.ID), zap.String("startTime", sess.StartTime))
			continue
		}
		end, err := parseInstant(sess.EndTime)
		if err != nil {
			s.log.Warn("skipping study session with bad end instant",
				zap.Int64("id", sess.ID), zap.String("endTime", sess.EndTime))
			continue
		}

		// A session crossing midnight attributes entirely to the day
		// it started.
		day := timespan.DayKey(start)
		total := result.Days[day]
		total.Minutes += timespan.Minutes(start, end)
		result.Days[day] = total

		span := timespan.Between(start, end)
		result.Records = append(result.Records, models.MergedRecord{
			Kind:        models.RecordStudy,
			ID:          sess.ID,
			SubjectID:   sess.SubjectID,
			SubjectName: subject.Name,
			ColorHex:    subject.Color(defaultStudyColor),
			CompletedAt: end,
			HasSpan:     true,
			StartTime:   start,
			EndTime:     end,
			Span:        span,
			Note:        sess.Note,
		})
	}

	for _, wl := range logs {
		subject, ok := byID[wl.SubjectID]
		if !ok {
			continue
		}

		day, completedAt, err := parseLogicalDate(wl.Date)
		if err != nil {
			s.log.Warn("skipping word log with bad date",
				zap.Int64("id", wl.ID), zap.String("date", wl.Date))
			continue
		}

		record := models.MergedRecord{
			Kind:        models.RecordWord,
			ID:          wl.ID,
			SubjectID:   wl.SubjectID,
			SubjectName: subject.Name,
			ColorHex:    subject.Color(defaultWordColor),
			CompletedAt: completedAt,
			Count:       wl.Count,
			Note:        wl.Note,
		}

		total := result.Days[day]
		total.Words += wl.Count

		if wl.Timed() {
			start, startErr := parseInstant(wl.StartTime)
			end, endErr := parseInstant(wl.EndTime)
			if startErr != nil || endErr != nil {
				s.log.Warn("ignoring malformed span on word log",
					zap.Int64("id", wl.ID))
			} else {
				// Span minutes land in the bucket of the log's own
				// date, not the span's start day. Study sessions key
				// the other way; the asymmetry is kept on purpose.
				total.Minutes += timespan.Minutes(start, end)
				record.HasSpan = true
				record.StartTime = start
				record.EndTime = end
				record.Span = timespan.Between(start, end)
				record.CompletedAt = end
			}
		}

		result.Days[day] = total
		result.Records = append(result.Records, record)
	}

	// Newest first; ties keep input order, which the history view
	// relies on for records sharing an instant.
	sort.SliceStable(result.Records, func(i, j int) bool {
		return result.Records[i].CompletedAt.After(result.Records[j].CompletedAt)
	})

	return result
}

// History returns the merged chronological record list for a range.
func (s *AggregateS) History(ctx context.Context, from, to string) ([]models.MergedRecord, error) {
	sessions, logs, subjects, err := s.fetchRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return s.Aggregate(sessions, logs, subjects).Records, nil
}

// Month returns per-day totals for a calendar month.
func (s *AggregateS) Month(ctx context.Context, year int, month time.Month) (map[string]models.DayTotal, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	sessions, logs, subjects, err := s.fetchRange(ctx, timespan.DayKey(first), timespan.DayKey(last))
	if err != nil {
		return nil, err
	}
	return s.Aggregate(sessions, logs, subjects).Days, nil
}

// Day returns one day's totals plus its full record list.
func (s *AggregateS) Day(ctx context.Context, date string) (DayDetail, error) {
	sessions, logs, subjects, err := s.fetchRange(ctx, date, date)
	if err != nil {
		return DayDetail{}, err
	}

	agg := s.Aggregate(sessions, logs, subjects)
	return DayDetail{
		Date:    date,
		Total:   agg.Days[date],
		Records: agg.Records,
	}, nil
}

// Today builds the dashboard overview: today's totals plus every
// subject's progress toward its daily target.
func (s *AggregateS) Today(ctx context.Context) (Overview, error) {
	today := timespan.DayKey(s.now())

	sessions, logs, subjects, err := s.fetchRange(ctx, today, today)
	if err != nil {
		return Overview{}, err
	}

	agg := s.Aggregate(sessions, logs, subjects)

	minutesBySubject := make(map[int64]int)
	wordsBySubject := make(map[int64]int)
	for _, rec := range agg.Records {
		switch rec.Kind {
		case models.RecordStudy:
			minutesBySubject[rec.SubjectID] += timespan.Minutes(rec.StartTime, rec.EndTime)
		case models.RecordWord:
			wordsBySubject[rec.SubjectID] += rec.Count
			if rec.HasSpan {
				minutesBySubject[rec.SubjectID] += timespan.Minutes(rec.StartTime, rec.EndTime)
			}
		}
	}

	overview := Overview{
		TotalMinutes: agg.Days[today].Minutes,
		TotalWords:   agg.Days[today].Words,
		Subjects:     make([]models.SubjectProgress, 0, len(subjects)),
	}
	for _, subject := range subjects {
		overview.Subjects = append(overview.Subjects, models.SubjectProgress{
			Subject:      subject,
			TodayMinutes: minutesBySubject[subject.ID],
			TodayWords:   wordsBySubject[subject.ID],
		})
	}

	return overview, nil
}

// fetchRange loads the three inputs of one logical aggregation
// concurrently. A merged view is never computed from a partial fetch;
// any failure fails the whole load.
func (s *AggregateS) fetchRange(ctx context.Context, from, to string) ([]models.StudySession, []models.WordLog, []models.Subject, error) {
	var (
		sessions []models.StudySession
		logs     []models.WordLog
		subjects []models.Subject
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = s.api.StudySessions(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.api.WordLogs(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		subjects, err = s.api.Subjects(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed load records for %s..%s: %w", from, to, err)
	}

	s.subjects.Fill(subjects)
	return sessions, logs, subjects, nil
}

func parseInstant(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

// parseLogicalDate accepts the word-log date either as a plain
// calendar day or as a full instant (older clients posted the latter).
func parseLogicalDate(raw string) (day string, completedAt time.Time, err error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return raw, t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", time.Time{}, err
	}
	return timespan.DayKey(t), t, nil
}
