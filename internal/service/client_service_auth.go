package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

type clientAuthService struct {
	session ClientSession
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter, logger: logger}
}

// Register does not log in; the dashboard returns to the login form.
func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) error {
	if _, err := a.adapter.Register(ctx, credentials); err != nil {
		return mapLoginError(err)
	}

	a.logger.Info().Str("email", credentials.Email).Msg("professional registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return mapLoginError(err)
	}

	if err = a.session.Save(ctx, token.AccessToken); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	a.logger.Info().Str("email", credentials.Email).Msg("logged in")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *clientAuthService) Restore(ctx context.Context) (bool, error) {
	if err := a.session.Load(ctx); err != nil {
		return false, fmt.Errorf("error restoring session: %w", err)
	}

	return a.session.IsAuthenticated(), nil
}

// mapLoginError keeps a 401 from login as a credentials failure: there is
// no session to expire yet.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrTransport) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}
	return err
}
