package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/yukimo/studytrack.git/internal/models"
	mock_service "github.com/yukimo/studytrack.git/internal/service/mock"
	"github.com/yukimo/studytrack.git/internal/storage/cache"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAggregateMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII)) *AggregateS {
	t.Helper()

	api := mock_service.NewMockAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	return NewAggregateService(api, cache.NewSubjects(), zap.NewNop())
}

func newAggregator() *AggregateS {
	return NewAggregateService(nil, cache.NewSubjects(), zap.NewNop())
}

var testSubjects = []models.Subject{
	{ID: 1, Name: "Math", ColorHex: "#112233", StudyType: models.StudyDuration, DailyTarget: 60},
	{ID: 2, Name: "Spanish", StudyType: models.StudyCount, DailyTarget: 50},
}

func TestAggregate_SessionMinutesKeyedByStartDay(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	sessions := []models.StudySession{
		{ID: 10, SubjectID: 1, StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T09:45:00Z"},
		// Crosses midnight; the whole duration lands on the start day.
		{ID: 11, SubjectID: 1, StartTime: "2024-01-01T23:30:00Z", EndTime: "2024-01-02T00:30:00Z"},
	}

	result := s.Aggregate(sessions, nil, testSubjects)

	assert.Equal(t, models.DayTotal{Minutes: 105}, result.Days["2024-01-01"])
	_, hasNextDay := result.Days["2024-01-02"]
	assert.False(t, hasNextDay)

	require.Len(t, result.Records, 2)
	first := result.Records[0]
	assert.Equal(t, models.RecordStudy, first.Kind)
	assert.Equal(t, int64(11), first.ID)
	assert.Equal(t, "Math", first.SubjectName)
	assert.Equal(t, "#112233", first.ColorHex)
	assert.Equal(t, 60, first.Span.Minutes)
}

func TestAggregate_WordLogMinutesKeyedByLogDate(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	// The span started the previous evening but the log is attributed
	// to Jan 2; count and minutes both land on Jan 2. This asymmetry
	// with study sessions is deliberate.
	logs := []models.WordLog{
		{
			ID:        20,
			SubjectID: 2,
			Date:      "2024-01-02",
			Count:     30,
			StartTime: "2024-01-01T23:55:00Z",
			EndTime:   "2024-01-02T00:05:00Z",
		},
	}

	result := s.Aggregate(nil, logs, testSubjects)

	assert.Equal(t, models.DayTotal{Minutes: 10, Words: 30}, result.Days["2024-01-02"])
	_, hasStartDay := result.Days["2024-01-01"]
	assert.False(t, hasStartDay)

	require.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.Equal(t, models.RecordWord, record.Kind)
	assert.True(t, record.HasSpan)
	assert.Equal(t, 30, record.Count)
	assert.Equal(t, 10, record.Span.Minutes)
	// Spanned word logs complete at the span end, not the bare date.
	assert.Equal(t, "2024-01-02T00:05:00Z", record.CompletedAt.Format(time.RFC3339))
}

func TestAggregate_CountOnlyLogAddsNoMinutes(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	logs := []models.WordLog{
		{ID: 21, SubjectID: 2, Date: "2024-01-03", Count: 40},
	}

	result := s.Aggregate(nil, logs, testSubjects)

	assert.Equal(t, models.DayTotal{Minutes: 0, Words: 40}, result.Days["2024-01-03"])
	require.Len(t, result.Records, 1)
	assert.False(t, result.Records[0].HasSpan)
	assert.Equal(t, 0, result.Records[0].Span.Seconds)
}

func TestAggregate_SortIsStableOnEqualInstants(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	// Two sessions and a spanned word log all completing at the same
	// instant; output must keep input order (sessions before logs).
	sessions := []models.StudySession{
		{ID: 1, SubjectID: 1, StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T10:00:00Z"},
		{ID: 2, SubjectID: 1, StartTime: "2024-01-01T09:30:00Z", EndTime: "2024-01-01T10:00:00Z"},
	}
	logs := []models.WordLog{
		{ID: 3, SubjectID: 2, Date: "2024-01-01", Count: 5, StartTime: "2024-01-01T09:45:00Z", EndTime: "2024-01-01T10:00:00Z"},
	}

	result := s.Aggregate(sessions, logs, testSubjects)

	require.Len(t, result.Records, 3)
	assert.Equal(t, int64(1), result.Records[0].ID)
	assert.Equal(t, int64(2), result.Records[1].ID)
	assert.Equal(t, int64(3), result.Records[2].ID)
}

func TestAggregate_SortsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	sessions := []models.StudySession{
		{ID: 1, SubjectID: 1, StartTime: "2024-01-01T08:00:00Z", EndTime: "2024-01-01T08:30:00Z"},
		{ID: 2, SubjectID: 1, StartTime: "2024-01-01T11:00:00Z", EndTime: "2024-01-01T11:30:00Z"},
	}
	logs := []models.WordLog{
		{ID: 3, SubjectID: 2, Date: "2024-01-01", Count: 10, StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T09:30:00Z"},
	}

	result := s.Aggregate(sessions, logs, testSubjects)

	require.Len(t, result.Records, 3)
	assert.Equal(t, int64(2), result.Records[0].ID)
	assert.Equal(t, int64(3), result.Records[1].ID)
	assert.Equal(t, int64(1), result.Records[2].ID)
}

func TestAggregate_TotalsIgnoreInputOrder(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	sessions := []models.StudySession{
		{ID: 1, SubjectID: 1, StartTime: "2024-01-01T08:00:00Z", EndTime: "2024-01-01T08:30:00Z"},
		{ID: 2, SubjectID: 1, StartTime: "2024-01-01T11:00:00Z", EndTime: "2024-01-01T11:45:00Z"},
		{ID: 3, SubjectID: 1, StartTime: "2024-01-02T09:00:00Z", EndTime: "2024-01-02T10:00:00Z"},
	}
	logs := []models.WordLog{
		{ID: 4, SubjectID: 2, Date: "2024-01-01", Count: 10},
		{ID: 5, SubjectID: 2, Date: "2024-01-02", Count: 20, StartTime: "2024-01-02T10:00:00Z", EndTime: "2024-01-02T10:10:00Z"},
	}

	want := s.Aggregate(sessions, logs, testSubjects).Days

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffledSessions := append([]models.StudySession(nil), sessions...)
		shuffledLogs := append([]models.WordLog(nil), logs...)
		rng.Shuffle(len(shuffledSessions), func(a, b int) {
			shuffledSessions[a], shuffledSessions[b] = shuffledSessions[b], shuffledSessions[a]
		})
		rng.Shuffle(len(shuffledLogs), func(a, b int) {
			shuffledLogs[a], shuffledLogs[b] = shuffledLogs[b], shuffledLogs[a]
		})

		assert.Equal(t, want, s.Aggregate(shuffledSessions, shuffledLogs, testSubjects).Days)
	}
}

func TestAggregate_UnknownSubjectContributesNothing(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	sessions := []models.StudySession{
		{ID: 1, SubjectID: 99, StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T09:45:00Z"},
	}
	logs := []models.WordLog{
		{ID: 2, SubjectID: 98, Date: "2024-01-01", Count: 30},
	}

	result := s.Aggregate(sessions, logs, testSubjects)

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Days)
}

func TestAggregate_MalformedRecordsSkippedIndividually(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	sessions := []models.StudySession{
		{ID: 1, SubjectID: 1, StartTime: "garbage", EndTime: "2024-01-01T09:45:00Z"},
		{ID: 2, SubjectID: 1, StartTime: "2024-01-01T09:00:00Z", EndTime: "also garbage"},
		{ID: 3, SubjectID: 1, StartTime: "2024-01-01T10:00:00Z", EndTime: "2024-01-01T10:30:00Z"},
	}
	logs := []models.WordLog{
		{ID: 4, SubjectID: 2, Date: "31/12/2024", Count: 10},
		{ID: 5, SubjectID: 2, Date: "2024-01-01", Count: 20},
	}

	result := s.Aggregate(sessions, logs, testSubjects)

	require.Len(t, result.Records, 2)
	assert.Equal(t, models.DayTotal{Minutes: 30, Words: 20}, result.Days["2024-01-01"])
}

func TestAggregate_NegativeSpanSurfacesWithoutCrash(t *testing.T) {
	t.Parallel()

	s := newAggregator()

	// End before start: a data-integrity problem, not a crash. The
	// record keeps its negative derived duration.
	sessions := []models.StudySession{
		{ID: 1, SubjectID: 1, StartTime: "2024-01-01T10:00:00Z", EndTime: "2024-01-01T09:00:00Z"},
	}

	result := s.Aggregate(sessions, nil, testSubjects)

	require.Len(t, result.Records, 1)
	assert.Equal(t, -60, result.Records[0].Span.Minutes)
	assert.Equal(t, -60, result.Days["2024-01-01"].Minutes)
}

func TestIntensityFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		want    Intensity
	}{
		{0, IntensityNone},
		{1, IntensityLow},
		{59, IntensityLow},
		{60, IntensityMedium},
		{119, IntensityMedium},
		{120, IntensityHigh},
		{179, IntensityHigh},
		{180, IntensityVeryHigh},
		{239, IntensityVeryHigh},
		{240, IntensityExtreme},
		{1000, IntensityExtreme},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IntensityFor(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestAggregateS_Today(t *testing.T) {
	t.Parallel()

	today := "2024-01-01"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newAggregateMock(t, ctrl, func(api *mock_service.MockAPII) {
		api.EXPECT().StudySessions(gomock.Any(), today, today).Return([]models.StudySession{
			{ID: 1, SubjectID: 1, StartTime: "2024-01-01T09:00:00Z", EndTime: "2024-01-01T09:45:00Z"},
		}, nil)
		api.EXPECT().WordLogs(gomock.Any(), today, today).Return([]models.WordLog{
			{ID: 2, SubjectID: 2, Date: today, Count: 30, StartTime: "2024-01-01T10:00:00Z", EndTime: "2024-01-01T10:10:00Z"},
		}, nil)
		api.EXPECT().Subjects(gomock.Any()).Return(testSubjects, nil)
	})
	s.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	overview, err := s.Today(context.Background())
	require.NoError(t, err)

	// 45 session minutes plus 10 spanned word-log minutes.
	assert.Equal(t, 55, overview.TotalMinutes)
	assert.Equal(t, 30, overview.TotalWords)

	require.Len(t, overview.Subjects, 2)

	math := overview.Subjects[0]
	assert.Equal(t, 45, math.TodayMinutes)
	assert.InDelta(t, 75.0, math.Percent(), 0.001)

	spanish := overview.Subjects[1]
	assert.Equal(t, 30, spanish.TodayWords)
	assert.Equal(t, 10, spanish.TodayMinutes)
	assert.InDelta(t, 60.0, spanish.Percent(), 0.001)
}

func TestAggregateS_HistoryFailsWhenAnyFetchFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// One failing source fails the whole load; a partial merge is
	// never returned.
	s := newAggregateMock(t, ctrl, func(api *mock_service.MockAPII) {
		api.EXPECT().StudySessions(gomock.Any(), "2024-01-01", "2024-01-07").
			Return(nil, errors.New("connection refused"))
		api.EXPECT().WordLogs(gomock.Any(), "2024-01-01", "2024-01-07").
			Return([]models.WordLog{}, nil).AnyTimes()
		api.EXPECT().Subjects(gomock.Any()).
			Return(testSubjects, nil).AnyTimes()
	})

	records, err := s.History(context.Background(), "2024-01-01", "2024-01-07")
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestAggregateS_Month(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newAggregateMock(t, ctrl, func(api *mock_service.MockAPII) {
		api.EXPECT().StudySessions(gomock.Any(), "2024-02-01", "2024-02-29").Return([]models.StudySession{
			{ID: 1, SubjectID: 1, StartTime: "2024-02-14T09:00:00Z", EndTime: "2024-02-14T11:00:00Z"},
		}, nil)
		api.EXPECT().WordLogs(gomock.Any(), "2024-02-01", "2024-02-29").Return(nil, nil)
		api.EXPECT().Subjects(gomock.Any()).Return(testSubjects, nil)
	})

	totals, err := s.Month(context.Background(), 2024, time.February)
	require.NoError(t, err)

	assert.Equal(t, models.DayTotal{Minutes: 120}, totals["2024-02-14"])
	assert.Equal(t, IntensityHigh, IntensityFor(totals["2024-02-14"].Minutes))
}
