package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/mock"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientSession_LoadSaveClear(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	session := NewClientSession(repo, logger.Nop())

	repo.EXPECT().GetValue(ctx, SessionTokenKey).Return("persisted", nil)
	require.NoError(t, session.Load(ctx))
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "persisted", session.Token())

	repo.EXPECT().SaveValue(ctx, SessionTokenKey, "fresh").Return(nil)
	require.NoError(t, session.Save(ctx, "fresh"))
	assert.Equal(t, "fresh", session.Token())

	repo.EXPECT().DeleteValue(ctx, SessionTokenKey).Return(nil)
	require.NoError(t, session.Clear(ctx))
	assert.False(t, session.IsAuthenticated())
}

func TestClientSession_LoadMissing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	session := NewClientSession(repo, logger.Nop())

	repo.EXPECT().GetValue(ctx, SessionTokenKey).Return("", store.ErrSessionValueNotFound)

	require.NoError(t, session.Load(ctx))
	assert.False(t, session.IsAuthenticated())
}

func TestClientSession_SaveFailureKeepsOldToken(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	session := NewClientSession(repo, logger.Nop())

	repo.EXPECT().SaveValue(ctx, SessionTokenKey, "fresh").Return(errors.New("disk full"))

	assert.Error(t, session.Save(ctx, "fresh"))
	assert.Empty(t, session.Token())
}

func TestClientSession_ClearForgetsEvenOnDiskError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	session := NewClientSession(repo, logger.Nop())

	repo.EXPECT().SaveValue(ctx, SessionTokenKey, "tok").Return(nil)
	repo.EXPECT().DeleteValue(ctx, SessionTokenKey).Return(errors.New("locked"))

	require.NoError(t, session.Save(ctx, "tok"))
	assert.Error(t, session.Clear(ctx))
	assert.False(t, session.IsAuthenticated())
}

func TestClientSession_ClearIf(t *testing.T) {
	ctx := context.Background()

	t.Run("current token is cleared", func(t *testing.T) {
		repo := mock.NewMockSessionRepository(gomock.NewController(t))
		session := NewClientSession(repo, logger.Nop())

		repo.EXPECT().SaveValue(ctx, SessionTokenKey, "tok").Return(nil)
		repo.EXPECT().DeleteValue(ctx, SessionTokenKey).Return(nil)

		require.NoError(t, session.Save(ctx, "tok"))
		cleared, err := session.ClearIf(ctx, "tok")
		require.NoError(t, err)
		assert.True(t, cleared)
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("replaced token is left alone", func(t *testing.T) {
		repo := mock.NewMockSessionRepository(gomock.NewController(t))
		session := NewClientSession(repo, logger.Nop())

		repo.EXPECT().SaveValue(ctx, SessionTokenKey, "old").Return(nil)
		repo.EXPECT().SaveValue(ctx, SessionTokenKey, "new").Return(nil)

		require.NoError(t, session.Save(ctx, "old"))
		require.NoError(t, session.Save(ctx, "new"))

		cleared, err := session.ClearIf(ctx, "old")
		require.NoError(t, err)
		assert.False(t, cleared)
		assert.Equal(t, "new", session.Token())
	})
}

// A summary requested with the old token fails with 401 after the user has
// already logged in again.
func TestClientSession_LateUnauthorizedKeepsNewLogin(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockSessionRepository(gomock.NewController(t))
	session := NewClientSession(repo, logger.Nop())

	repo.EXPECT().SaveValue(gomock.Any(), SessionTokenKey, "old").Return(nil)
	repo.EXPECT().SaveValue(gomock.Any(), SessionTokenKey, "new").Return(nil)
	require.NoError(t, session.Save(ctx, "old"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
		// the new login lands while the request is in flight
		assert.NoError(t, session.Save(r.Context(), "new"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Não foi possível validar as credenciais"}`))
	}))
	defer srv.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, session, logger.Nop())
	require.NoError(t, err)
	svc := NewClientConversationService(session, serverAdapter, nil, logger.Nop())

	_, err = svc.Summarize(ctx, 1)

	assert.ErrorIs(t, err, ErrSupersededSession)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, app.MsgUnexpectedError, UserMessage(err))
	assert.Equal(t, "new", session.Token())
}
