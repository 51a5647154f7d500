package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/mock"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCheckInMessage = "Olá! Como você está se sentindo hoje?"

func TestCheckInService_SendCheckIns(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	patients := mock.NewMockPatientRepository(ctrl)
	messages := mock.NewMockMessageRepository(ctrl)
	messaging := mock.NewMockMessagingAdapter(ctrl)
	live := NewLiveService(logger.Nop())
	sub := live.Subscribe(1)

	svc := NewCheckInService(patients, messages, messaging, live, config.Workers{CheckInMessage: testCheckInMessage}, logger.Nop())

	patients.EXPECT().ListPatientsByStatus(ctx, models.StatusAutomatic).Return([]models.Patient{
		{ID: 1, PhoneNumber: "5511"},
		{ID: 2, PhoneNumber: "5522"},
		{ID: 3, PhoneNumber: "5533"},
	}, nil)

	messaging.EXPECT().SendText(gomock.Any(), "5511", testCheckInMessage).Return(nil)
	messaging.EXPECT().SendText(gomock.Any(), "5522", testCheckInMessage).Return(errors.New("blocked number"))
	messaging.EXPECT().SendText(gomock.Any(), "5533", testCheckInMessage).Return(nil)

	messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.Message) (models.Message, error) {
			assert.Equal(t, models.SenderProfessional, msg.Sender)
			assert.Equal(t, testCheckInMessage, msg.Text)
			msg.ID = msg.PatientID * 10
			return msg, nil
		}).Times(2)

	report, err := svc.SendCheckIns(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CheckInReport{Sent: 2, Failed: 1}, report)

	got := <-sub.C
	assert.Equal(t, int64(10), got.ID)
}

func TestCheckInService_ListFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	patients := mock.NewMockPatientRepository(ctrl)
	svc := NewCheckInService(patients, mock.NewMockMessageRepository(ctrl), mock.NewMockMessagingAdapter(ctrl), NewLiveService(logger.Nop()), config.Workers{}, logger.Nop())

	patients.EXPECT().ListPatientsByStatus(ctx, models.StatusAutomatic).Return(nil, store.ErrExecutingQuery)

	_, err := svc.SendCheckIns(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestCheckInService_NoPatients(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	patients := mock.NewMockPatientRepository(ctrl)
	svc := NewCheckInService(patients, mock.NewMockMessageRepository(ctrl), mock.NewMockMessagingAdapter(ctrl), NewLiveService(logger.Nop()), config.Workers{}, logger.Nop())

	patients.EXPECT().ListPatientsByStatus(ctx, models.StatusAutomatic).Return([]models.Patient{}, nil)

	report, err := svc.SendCheckIns(ctx)
	require.NoError(t, err)
	assert.Zero(t, report)
}
