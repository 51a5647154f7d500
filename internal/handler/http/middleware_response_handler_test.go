package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _, err := w.Hijack()

	assert.Error(t, err)
	assert.False(t, w.wroteHeader)
	assert.Same(t, w.ResponseWriter, w.Unwrap())
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	h := newTestHandler(t, &service.Services{})
	h.logger = l

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("abc"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/patients/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"status":202`)
	assert.Contains(t, out, `"size":3`)
	assert.Contains(t, out, `"uri":"/api/patients/"`)
	assert.Contains(t, out, `"trace_id":"trace-1"`)
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusSwitchingProtocols))
	assert.Equal(t, zerolog.WarnLevel, accessLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLevel(http.StatusServiceUnavailable))
}
