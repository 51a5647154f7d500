package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/handler"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := newHTTPServer(mux, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}

func TestHTTPServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())

	assert.Error(t, srv.run(context.Background()))
}

func TestNewHTTPServer_DefaultShutdownTimeout(t *testing.T) {
	srv := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)
}
