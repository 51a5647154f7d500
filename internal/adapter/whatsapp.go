package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"golang.org/x/time/rate"
)

type whatsAppTextMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             whatsAppTextBody `json:"text"`
}

type whatsAppTextBody struct {
	Body string `json:"body"`
}

type whatsAppAdapter struct {
	client        *utils.HTTPClient
	phoneNumberID string
	limiter       *rate.Limiter

	logger *logger.Logger
}

// NewWhatsAppAdapter constructs a [MessagingAdapter] for the WhatsApp Cloud
// API. Sends are throttled to cfg.RequestsPerSecond; zero or less disables
// the throttle.
func NewWhatsAppAdapter(cfg config.WhatsApp, timeout time.Duration, logger *logger.Logger) MessagingAdapter {
	client := utils.NewHTTPClient(cfg.APIURL, timeout)
	client.SetAuthToken(cfg.Token)

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &whatsAppAdapter{
		client:        client,
		phoneNumberID: cfg.PhoneNumberID,
		limiter:       rate.NewLimiter(limit, 1),
		logger:        logger,
	}
}

// SendText posts a text message to POST {APIURL}/{PHONE_NUMBER_ID}/messages.
// Any non-2xx answer is reported as [ErrMessageNotDelivered].
func (a *whatsAppAdapter) SendText(ctx context.Context, to, text string) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrMessageNotDelivered, err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(whatsAppTextMessage{
			MessagingProduct: "whatsapp",
			To:               to,
			Type:             "text",
			Text:             whatsAppTextBody{Body: text},
		}).
		Post("/" + a.phoneNumberID + "/messages")
	if err != nil {
		a.logger.Err(err).Str("func", "*whatsAppAdapter.SendText").Str("to", to).Msg("error sending message")
		return fmt.Errorf("%w: %w", ErrMessageNotDelivered, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Error().Err(err).Str("func", "*whatsAppAdapter.SendText").Str("to", to).Str("body", string(resp.Body())).Msg("message rejected by WhatsApp")
		return fmt.Errorf("%w: %w", ErrMessageNotDelivered, err)
	}

	a.logger.Info().Str("to", to).Msg("message sent")
	return nil
}
