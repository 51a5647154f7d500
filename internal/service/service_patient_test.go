package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/mock"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/validators"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPatientService(t *testing.T) (PatientService, *mock.MockPatientRepository, *mock.MockMetricRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	patients := mock.NewMockPatientRepository(ctrl)
	metrics := mock.NewMockMetricRepository(ctrl)

	return NewPatientService(patients, metrics, validators.NewRequestValidator(), logger.Nop()), patients, metrics
}

func TestPatientService_UpdatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		svc, patients, _ := newTestPatientService(t)
		name := "Maria"
		update := models.PatientUpdate{Name: &name}

		patients.EXPECT().UpdatePatient(ctx, int64(1), update).Return(models.Patient{ID: 1, Name: &name}, nil)

		got, err := svc.UpdatePatient(ctx, 1, update)
		require.NoError(t, err)
		assert.Equal(t, "Maria", got.DisplayName())
	})

	t.Run("empty update is passed through", func(t *testing.T) {
		svc, patients, _ := newTestPatientService(t)

		patients.EXPECT().UpdatePatient(ctx, int64(1), models.PatientUpdate{}).Return(models.Patient{ID: 1}, nil)

		_, err := svc.UpdatePatient(ctx, 1, models.PatientUpdate{})
		require.NoError(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _, _ := newTestPatientService(t)
		blank := "   "

		_, err := svc.UpdatePatient(ctx, 1, models.PatientUpdate{Name: &blank})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyName)
	})

	t.Run("negative weight", func(t *testing.T) {
		svc, _, _ := newTestPatientService(t)
		weight := -3.0

		_, err := svc.UpdatePatient(ctx, 1, models.PatientUpdate{TargetWeight: &weight})
		assert.ErrorIs(t, err, validators.ErrInvalidMeasurement)
	})

	t.Run("missing patient", func(t *testing.T) {
		svc, patients, _ := newTestPatientService(t)
		name := "Maria"

		patients.EXPECT().UpdatePatient(ctx, int64(9), gomock.Any()).Return(models.Patient{}, store.ErrPatientNotFound)

		_, err := svc.UpdatePatient(ctx, 9, models.PatientUpdate{Name: &name})
		assert.ErrorIs(t, err, store.ErrPatientNotFound)
	})
}

func TestPatientService_Control(t *testing.T) {
	ctx := context.Background()
	svc, patients, _ := newTestPatientService(t)

	patients.EXPECT().SetPatientStatus(ctx, int64(1), models.StatusManual).Return(models.Patient{ID: 1, Status: models.StatusManual}, nil)
	patients.EXPECT().SetPatientStatus(ctx, int64(1), models.StatusAutomatic).Return(models.Patient{ID: 1, Status: models.StatusAutomatic}, nil)

	got, err := svc.AssumeControl(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusManual, got.Status)

	got, err = svc.ReleaseControl(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAutomatic, got.Status)
}

func TestPatientService_Control_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, patients, _ := newTestPatientService(t)

	patients.EXPECT().SetPatientStatus(ctx, int64(5), models.StatusManual).Return(models.Patient{}, store.ErrPatientNotFound)

	_, err := svc.AssumeControl(ctx, 5)
	assert.ErrorIs(t, err, store.ErrPatientNotFound)
}

func TestPatientService_ListMetrics(t *testing.T) {
	ctx := context.Background()
	svc, _, metrics := newTestPatientService(t)

	want := []models.Metric{{PatientID: 1, Type: "peso", Value: 82.5}}
	metrics.EXPECT().ListMetrics(ctx, int64(1)).Return(want, nil)

	got, err := svc.ListMetrics(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
