package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveBaseURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8000", LiveBaseURL("http://localhost:8000"))
	assert.Equal(t, "wss://api.cuide.me", LiveBaseURL("https://api.cuide.me"))
	assert.Equal(t, "ws://already", LiveBaseURL("ws://already"))
}

func newLiveServer(t *testing.T, frames []models.Message, hold bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/ws/5", r.URL.Path)

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		for _, frame := range frames {
			if err := wsjson.Write(r.Context(), conn, frame); err != nil {
				return
			}
		}
		if hold {
			// keep the connection open until the client leaves
			_, _, _ = conn.Read(r.Context())
			return
		}
		conn.Close(websocket.StatusNormalClosure, "")
	}))
}

func newTestLiveAdapter(t *testing.T, url, token string) LiveAdapter {
	t.Helper()
	a, err := NewWSLiveAdapter(config.ClientAdapter{BaseURL: url}, staticToken(token), logger.Nop())
	require.NoError(t, err)
	return a
}

func TestSubscribe_DeliversFramesInOrder(t *testing.T) {
	frames := []models.Message{
		{ID: 1, Text: "primeira", Sender: models.SenderPatient},
		{ID: 2, Text: "segunda", Sender: models.SenderPatient},
	}
	srv := newLiveServer(t, frames, false)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := newTestLiveAdapter(t, srv.URL, "jwt").Subscribe(ctx, 5)
	require.NoError(t, err)

	var got []models.Message
	for m := range ch {
		got = append(got, m)
	}

	require.Len(t, got, 2)
	assert.Equal(t, "primeira", got[0].Text)
	assert.Equal(t, "segunda", got[1].Text)
	assert.Equal(t, int64(5), got[1].PatientID)
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	srv := newLiveServer(t, nil, true)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := newTestLiveAdapter(t, srv.URL, "jwt").Subscribe(ctx, 5)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel was not closed after cancel")
	}
}

func TestSubscribe_Unauthorized(t *testing.T) {
	srv := newLiveServer(t, nil, false)
	defer srv.Close()

	_, err := newTestLiveAdapter(t, srv.URL, "expired").Subscribe(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "expired", RequestToken(err))
}
