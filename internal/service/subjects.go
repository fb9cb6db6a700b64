package service

import (
	"context"
	"errors"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/storage/cache"
	"github.com/yukimo/studytrack.git/pkg/validator"

	"go.uber.org/zap"
)

// ErrDeleteNotConfirmed means the caller skipped the confirmation
// step; the delete request was never issued.
var ErrDeleteNotConfirmed = errors.New("subject delete not confirmed")

type SubjectS struct {
	api   SubjectAPII
	cache *cache.Subjects
	log   *zap.Logger
}

func NewSubjectService(api SubjectAPII, subjects *cache.Subjects, log *zap.Logger) *SubjectS {
	return &SubjectS{api: api, cache: subjects, log: log}
}

// Subjects lists every subject and refreshes the lookup cache.
func (s *SubjectS) Subjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.api.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Fill(subjects)
	return subjects, nil
}

// ActiveSubjects lists subjects for pickers: archived ones are hidden
// but still resolve in history through the cache.
func (s *SubjectS) ActiveSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	active := subjects[:0]
	for _, subject := range subjects {
		if !subject.Archived {
			active = append(active, subject)
		}
	}
	return active, nil
}

func (s *SubjectS) CreateSubject(ctx context.Context, input models.NewSubject) (models.Subject, error) {
	if err := validator.ValidateStruct(input); err != nil {
		return models.Subject{}, err
	}

	created, err := s.api.CreateSubject(ctx, input)
	if err != nil {
		return models.Subject{}, err
	}

	s.cache.Set(created)
	s.log.Info("subject created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *SubjectS) UpdateSubject(ctx context.Context, id int64, input models.NewSubject) (models.Subject, error) {
	if err := validator.ValidateStruct(input); err != nil {
		return models.Subject{}, err
	}

	updated, err := s.api.UpdateSubject(ctx, id, input)
	if err != nil {
		return models.Subject{}, err
	}

	s.cache.Set(updated)
	return updated, nil
}

// DeleteSubject requires an explicit confirmation flag; without it no
// request is issued.
func (s *SubjectS) DeleteSubject(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	if err := s.api.DeleteSubject(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(id)
	s.log.Info("subject deleted", zap.Int64("id", id))
	return nil
}
