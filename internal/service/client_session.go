package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
)

// SessionTokenKey is the key the access token is stored under.
const SessionTokenKey = "accessToken"

type clientSession struct {
	sessionRepository store.SessionRepository

	mu    sync.RWMutex
	token string

	// writeMu orders disk writes with the in-memory swap
	writeMu sync.Mutex

	logger *logger.Logger
}

func NewClientSession(sessionRepository store.SessionRepository, logger *logger.Logger) ClientSession {
	return &clientSession{sessionRepository: sessionRepository, logger: logger}
}

// Token is read from tea.Cmd goroutines, hence the lock.
func (s *clientSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *clientSession) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *clientSession) Load(ctx context.Context) error {
	token, err := s.sessionRepository.GetValue(ctx, SessionTokenKey)
	if errors.Is(err, store.ErrSessionValueNotFound) {
		token, err = "", nil
	}
	if err != nil {
		return err
	}

	s.set(token)
	return nil
}

func (s *clientSession) Save(ctx context.Context, token string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.sessionRepository.SaveValue(ctx, SessionTokenKey, token); err != nil {
		return err
	}

	s.set(token)
	return nil
}

// Clear drops the in-memory token even when deleting it from disk fails.
func (s *clientSession) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.clear(ctx)
}

// ClearIf clears the session only while token is still the current one. A
// 401 answered to a request sent before a new login must not drop the new
// token.
func (s *clientSession) ClearIf(ctx context.Context, token string) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.Token() != token {
		s.logger.Debug().Msg("unauthorized answer for a replaced token ignored")
		return false, nil
	}
	return true, s.clear(ctx)
}

func (s *clientSession) clear(ctx context.Context) error {
	s.set("")

	if err := s.sessionRepository.DeleteValue(ctx, SessionTokenKey); err != nil {
		s.logger.Err(err).Str("func", "*clientSession.clear").Msg("persisted token not deleted")
		return err
	}
	return nil
}

func (s *clientSession) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}
