package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yukimo/studytrack.git/internal/models"
)

func (a *API) Subjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := a.do(ctx, http.MethodGet, "/subjects", nil, nil, &subjects); err != nil {
		return nil, fmt.Errorf("failed load subjects: %w", err)
	}
	return subjects, nil
}

func (a *API) CreateSubject(ctx context.Context, subject models.NewSubject) (models.Subject, error) {
	var created models.Subject
	if err := a.do(ctx, http.MethodPost, "/subjects", nil, subject, &created); err != nil {
		return models.Subject{}, fmt.Errorf("failed create subject: %w", err)
	}
	return created, nil
}

func (a *API) UpdateSubject(ctx context.Context, id int64, subject models.NewSubject) (models.Subject, error) {
	var updated models.Subject
	path := fmt.Sprintf("/subjects/%d", id)
	if err := a.do(ctx, http.MethodPut, path, nil, subject, &updated); err != nil {
		return models.Subject{}, fmt.Errorf("failed update subject %d: %w", id, err)
	}
	return updated, nil
}

func (a *API) DeleteSubject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/subjects/%d", id)
	if err := a.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed delete subject %d: %w", id, err)
	}
	return nil
}
