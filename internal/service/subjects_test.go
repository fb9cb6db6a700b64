package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yukimo/studytrack.git/internal/models"
	mock_service "github.com/yukimo/studytrack.git/internal/service/mock"
	"github.com/yukimo/studytrack.git/internal/storage/cache"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSubjectMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockSubjectAPII)) (*SubjectS, *cache.Subjects) {
	t.Helper()

	api := mock_service.NewMockSubjectAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	subjects := cache.NewSubjects()
	return NewSubjectService(api, subjects, zap.NewNop()), subjects
}

func TestSubjectS_ActiveSubjectsHidesArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, subjects := newSubjectMock(t, ctrl, func(api *mock_service.MockSubjectAPII) {
		api.EXPECT().Subjects(gomock.Any()).Return([]models.Subject{
			{ID: 1, Name: "Math"},
			{ID: 2, Name: "Old French", Archived: true},
		}, nil)
	})

	active, err := s.ActiveSubjects(context.Background())
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, "Math", active[0].Name)

	// Archived subjects still resolve for history rendering.
	archived, ok := subjects.Get(2)
	assert.True(t, ok)
	assert.True(t, archived.Archived)
}

func TestSubjectS_CreateSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   models.NewSubject
		f       func(*mock_service.MockSubjectAPII)
		wantErr bool
	}{
		{
			name:  "success",
			input: models.NewSubject{Name: "Physics", StudyType: models.StudyDuration, DailyTarget: 30},
			f: func(api *mock_service.MockSubjectAPII) {
				api.EXPECT().CreateSubject(gomock.Any(), gomock.Any()).
					Return(models.Subject{ID: 3, Name: "Physics"}, nil)
			},
		},
		{
			name:    "empty name blocked before any call",
			input:   models.NewSubject{StudyType: models.StudyDuration},
			wantErr: true,
		},
		{
			name:    "bad study type blocked before any call",
			input:   models.NewSubject{Name: "Chem", StudyType: "SOMETIMES"},
			wantErr: true,
		},
		{
			name:    "bad color blocked before any call",
			input:   models.NewSubject{Name: "Chem", StudyType: models.StudyCount, ColorHex: "red-ish"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, subjects := newSubjectMock(t, ctrl, tt.f)

			created, err := s.CreateSubject(context.Background(), tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(3), created.ID)

			cached, ok := subjects.Get(3)
			assert.True(t, ok)
			assert.Equal(t, "Physics", cached.Name)
		})
	}
}

func TestSubjectS_DeleteSubject(t *testing.T) {
	t.Parallel()

	t.Run("unconfirmed delete never reaches the api", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newSubjectMock(t, ctrl, nil)

		err := s.DeleteSubject(context.Background(), 1, false)
		require.ErrorIs(t, err, ErrDeleteNotConfirmed)
	})

	t.Run("confirmed delete evicts the cache", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, subjects := newSubjectMock(t, ctrl, func(api *mock_service.MockSubjectAPII) {
			api.EXPECT().DeleteSubject(gomock.Any(), int64(1)).Return(nil)
		})
		subjects.Set(models.Subject{ID: 1, Name: "Math"})

		require.NoError(t, s.DeleteSubject(context.Background(), 1, true))

		_, ok := subjects.Get(1)
		assert.False(t, ok)
	})

	t.Run("api failure keeps the cache", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, subjects := newSubjectMock(t, ctrl, func(api *mock_service.MockSubjectAPII) {
			api.EXPECT().DeleteSubject(gomock.Any(), int64(1)).Return(errors.New("boom"))
		})
		subjects.Set(models.Subject{ID: 1, Name: "Math"})

		require.Error(t, s.DeleteSubject(context.Background(), 1, true))

		_, ok := subjects.Get(1)
		assert.True(t, ok)
	})
}
