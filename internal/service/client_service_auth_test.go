package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/mock"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthService returns the service with a mocked adapter and session.
func newTestClientAuthService(t *testing.T) (ClientAuthService, *mock.MockServerAdapter, *mock.MockClientSession) {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockClientSession(ctrl)

	return NewClientAuthService(session, serverAdapter, logger.Nop()), serverAdapter, session
}

func TestClientAuthService_Login(t *testing.T) {
	ctx := context.Background()
	creds := models.Credentials{Email: "ana@clinic.com", Password: "s3cret"}

	t.Run("persists token", func(t *testing.T) {
		svc, serverAdapter, session := newTestClientAuthService(t)

		gomock.InOrder(
			serverAdapter.EXPECT().Login(ctx, creds).Return(models.TokenResponse{AccessToken: "jwt", TokenType: "bearer"}, nil),
			session.EXPECT().Save(ctx, "jwt").Return(nil),
		)

		require.NoError(t, svc.Login(ctx, creds))
	})

	t.Run("401 is wrong credentials, not an expired session", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientAuthService(t)

		serverAdapter.EXPECT().Login(ctx, creds).Return(models.TokenResponse{}, adapter.NewResponseError(401, app.MsgInvalidEmailOrPassword))

		err := svc.Login(ctx, creds)
		assert.ErrorIs(t, err, ErrWrongCredentials)
		assert.NotErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, app.MsgInvalidEmailOrPassword, UserMessage(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientAuthService(t)

		serverAdapter.EXPECT().Login(ctx, creds).Return(models.TokenResponse{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport))

		err := svc.Login(ctx, creds)
		assert.ErrorIs(t, err, ErrNetwork)
		assert.Equal(t, app.MsgNetworkError, UserMessage(err))
	})
}

func TestClientAuthService_Register(t *testing.T) {
	ctx := context.Background()
	creds := models.Credentials{Email: "ana@clinic.com", Password: "s3cret"}

	t.Run("success", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientAuthService(t)

		serverAdapter.EXPECT().Register(ctx, creds).Return(models.Professional{ID: 1, Email: creds.Email}, nil)

		require.NoError(t, svc.Register(ctx, creds))
	})

	t.Run("server detail is kept", func(t *testing.T) {
		svc, serverAdapter, _ := newTestClientAuthService(t)

		serverAdapter.EXPECT().Register(ctx, creds).Return(models.Professional{}, adapter.NewResponseError(400, app.MsgEmailAlreadyRegistered))

		err := svc.Register(ctx, creds)
		require.Error(t, err)
		assert.Equal(t, app.MsgEmailAlreadyRegistered, UserMessage(err))
	})
}

func TestClientAuthService_RestoreAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, session := newTestClientAuthService(t)

	session.EXPECT().Load(ctx).Return(nil)
	session.EXPECT().IsAuthenticated().Return(true)

	ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	session.EXPECT().Clear(ctx).Return(nil)
	assert.NoError(t, svc.Logout(ctx))
}
