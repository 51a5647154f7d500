// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
)

// mapAdapterError translates an adapter failure into a dashboard error.
// A 401 clears the session before ErrSessionExpired is returned, unless the
// request carried a token that was replaced meanwhile. The adapter error
// stays wrapped so [adapter.Detail] keeps working.
func mapAdapterError(ctx context.Context, session ClientSession, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		cleared, clearErr := session.ClearIf(ctx, adapter.RequestToken(err))
		if clearErr != nil {
			return fmt.Errorf("%w: %w (clear session: %w)", ErrSessionExpired, err, clearErr)
		}
		if !cleared {
			return fmt.Errorf("%w: %w", ErrSupersededSession, err)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return err
}

// UserMessage returns the Portuguese text the dashboard shows for err.
// Server details are shown verbatim; anything else gets a generic message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, ErrSupersededSession):
		return app.MsgUnexpectedError
	case errors.Is(err, ErrNetwork), errors.Is(err, adapter.ErrTransport):
		return app.MsgNetworkError
	case errors.Is(err, ErrEmptyMessage):
		return app.MsgEmptyMessage
	case errors.Is(err, ErrNoPatientSelected):
		return app.MsgNoPatientSelected
	}

	if detail := adapter.Detail(err); detail != "" {
		return detail
	}
	return app.MsgUnexpectedError
}
