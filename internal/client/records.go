package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yukimo/studytrack.git/internal/models"
)

func rangeQuery(from, to string) url.Values {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return q
}

// StudySessions lists sessions whose date falls in [from, to],
// inclusive. Dates are 2006-01-02 strings.
func (a *API) StudySessions(ctx context.Context, from, to string) ([]models.StudySession, error) {
	var sessions []models.StudySession
	if err := a.do(ctx, http.MethodGet, "/study-sessions", rangeQuery(from, to), nil, &sessions); err != nil {
		return nil, fmt.Errorf("failed load study sessions: %w", err)
	}
	return sessions, nil
}

func (a *API) CreateStudySession(ctx context.Context, session models.NewStudySession) (models.StudySession, error) {
	var created models.StudySession
	if err := a.do(ctx, http.MethodPost, "/study-sessions", nil, session, &created); err != nil {
		return models.StudySession{}, fmt.Errorf("failed create study session: %w", err)
	}
	return created, nil
}

// WordLogs lists word logs attributed to dates in [from, to],
// inclusive.
func (a *API) WordLogs(ctx context.Context, from, to string) ([]models.WordLog, error) {
	var logs []models.WordLog
	if err := a.do(ctx, http.MethodGet, "/word-logs", rangeQuery(from, to), nil, &logs); err != nil {
		return nil, fmt.Errorf("failed load word logs: %w", err)
	}
	return logs, nil
}

func (a *API) CreateWordLog(ctx context.Context, log models.NewWordLog) (models.WordLog, error) {
	var created models.WordLog
	if err := a.do(ctx, http.MethodPost, "/word-logs", nil, log, &created); err != nil {
		return models.WordLog{}, fmt.Errorf("failed create word log: %w", err)
	}
	return created, nil
}
