package service

import (
	"context"

	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/storage/cache"

	"go.uber.org/zap"
)

type SubjectAPII interface {
	Subjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, subject models.NewSubject) (models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, subject models.NewSubject) (models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type RecordAPII interface {
	StudySessions(ctx context.Context, from, to string) ([]models.StudySession, error)
	CreateStudySession(ctx context.Context, session models.NewStudySession) (models.StudySession, error)
	WordLogs(ctx context.Context, from, to string) ([]models.WordLog, error)
	CreateWordLog(ctx context.Context, log models.NewWordLog) (models.WordLog, error)
}

type APII interface {
	SubjectAPII
	RecordAPII
}

type Service struct {
	*SubjectS
	*LogS
	*AggregateS
}

func InitServices(api APII, subjects *cache.Subjects, log *zap.Logger) *Service {
	return &Service{
		SubjectS:   NewSubjectService(api, subjects, log),
		LogS:       NewLogService(api, log),
		AggregateS: NewAggregateService(api, subjects, log),
	}
}
