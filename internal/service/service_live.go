package service

import (
	"sync"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

// subscriptionBuffer is how many records a viewer may lag behind before it
// is dropped.
const subscriptionBuffer = 16

// Subscription is one dashboard watching one patient. C is closed when the
// subscription ends, either by Unsubscribe or because the viewer fell behind.
type Subscription struct {
	C <-chan models.Message

	patientID int64
	ch        chan models.Message
}

func (s *Subscription) PatientID() int64 {
	return s.patientID
}

// liveHub keeps per-patient subscriber sets.
type liveHub struct {
	mu          sync.Mutex
	subscribers map[int64]map[*Subscription]struct{}

	logger *logger.Logger
}

func NewLiveService(logger *logger.Logger) LiveService {
	return &liveHub{
		subscribers: make(map[int64]map[*Subscription]struct{}),
		logger:      logger,
	}
}

func (h *liveHub) Subscribe(patientID int64) *Subscription {
	ch := make(chan models.Message, subscriptionBuffer)
	sub := &Subscription{C: ch, patientID: patientID, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[patientID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subscribers[patientID] = set
	}
	set[sub] = struct{}{}

	h.logger.Debug().Int64("patient_id", patientID).Int("viewers", len(set)).Msg("live viewer subscribed")
	return sub
}

// Unsubscribe is safe to call more than once.
func (h *liveHub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(sub)
}

// Broadcast never blocks: a viewer whose buffer is full is dropped.
func (h *liveHub) Broadcast(patientID int64, message models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[patientID] {
		select {
		case sub.ch <- message:
		default:
			h.logger.Warn().Int64("patient_id", patientID).Msg("slow live viewer dropped")
			h.remove(sub)
		}
	}
}

// remove must be called with h.mu held.
func (h *liveHub) remove(sub *Subscription) {
	set, ok := h.subscribers[sub.patientID]
	if !ok {
		return
	}
	if _, ok = set[sub]; !ok {
		return
	}

	delete(set, sub)
	close(sub.ch)
	if len(set) == 0 {
		delete(h.subscribers, sub.patientID)
	}
}
