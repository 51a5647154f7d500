package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/gorilla/websocket"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveReadLimit  = 4 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the dashboard is not a browser; origins are not meaningful here
	CheckOrigin: func(r *http.Request) bool { return true },
}

// live streams every new message record of one patient as a JSON text frame.
// Client frames are read and discarded; they only keep the connection alive.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log := logger.FromRequest(r).With().Int64("patient_id", patientID).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("live upgrade failed")
		return
	}
	defer conn.Close()

	sub := h.services.LiveService.Subscribe(patientID)
	defer h.services.LiveService.Unsubscribe(sub)
	log.Debug().Msg("live viewer connected")

	closed := make(chan struct{})
	go func() {
		defer close(closed)

		conn.SetReadLimit(liveReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(livePongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Msg("live viewer read failed")
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.Debug().Msg("live viewer disconnected")
			return
		case message, ok := <-sub.C:
			if !ok {
				log.Warn().Msg("live viewer dropped")
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"), time.Now().Add(liveWriteWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err = conn.WriteJSON(message); err != nil {
				log.Debug().Err(err).Msg("live write failed")
				return
			}
		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}
