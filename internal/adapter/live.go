package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// liveReadLimit bounds a single frame. A frame carries one message record.
const liveReadLimit = 64 << 10

type wsLiveAdapter struct {
	baseURL string
	tokens  TokenSource

	logger *logger.Logger
}

// NewWSLiveAdapter constructs the websocket implementation of [LiveAdapter].
// The live URL is the configured base URL with http replaced by ws.
func NewWSLiveAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (LiveAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &wsLiveAdapter{
		baseURL: LiveBaseURL(baseURL),
		tokens:  tokens,
		logger:  logger,
	}, nil
}

// LiveBaseURL derives the websocket base URL from an HTTP base URL:
// http:// becomes ws:// and https:// becomes wss://.
func LiveBaseURL(httpBaseURL string) string {
	switch {
	case strings.HasPrefix(httpBaseURL, "https://"):
		return "wss://" + strings.TrimPrefix(httpBaseURL, "https://")
	case strings.HasPrefix(httpBaseURL, "http://"):
		return "ws://" + strings.TrimPrefix(httpBaseURL, "http://")
	}
	return httpBaseURL
}

// Subscribe implements [LiveAdapter]. Dialing happens before it returns;
// reading continues in a goroutine that owns the connection.
func (a *wsLiveAdapter) Subscribe(ctx context.Context, patientID int64) (<-chan models.Message, error) {
	opts := &websocket.DialOptions{HTTPHeader: http.Header{}}
	var token string
	if a.tokens != nil {
		token = a.tokens.Token()
	}
	if token != "" {
		opts.HTTPHeader.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.Dial(ctx, a.baseURL+"/ws/"+formatID(patientID), opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			respErr := NewResponseError(resp.StatusCode, "")
			respErr.token = token
			return nil, respErr
		}
		return nil, fmt.Errorf("%w: live dial: %w", ErrTransport, err)
	}
	conn.SetReadLimit(liveReadLimit)

	log := a.logger.With().Int64("patient_id", patientID).Logger()
	log.Debug().Msg("live channel connected")

	messages := make(chan models.Message)
	go func() {
		defer close(messages)
		defer conn.CloseNow()

		for {
			var message models.Message
			if err := wsjson.Read(ctx, conn, &message); err != nil {
				if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
					log.Warn().Err(err).Msg("live channel closed")
				}
				return
			}
			message.PatientID = patientID

			select {
			case messages <- message:
			case <-ctx.Done():
				return
			}
		}
	}()

	return messages, nil
}
