package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.BaseURL and reads the bearer
// token from tokens before every authenticated call.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register posts the credentials as JSON to POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.Professional, error) {
	var professional models.Professional

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&professional).
		Post("/auth/register")
	if err != nil {
		return models.Professional{}, fmt.Errorf("%w: register request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Professional{}, err
	}

	return professional, nil
}

// Login posts the credentials form-encoded (username, password) to
// POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Email,
			"password": credentials.Password,
		}).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("login: empty access token in response")
	}

	return token, nil
}

func (h *httpServerAdapter) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient

	resp, err := h.authedRequest(ctx).
		SetResult(&patients).
		Get("/api/patients")
	if err != nil {
		return nil, fmt.Errorf("%w: list patients request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return patients, nil
}

// UpdatePatient sends PUT /api/patients/{id}. Only the non-nil fields of
// update are serialised.
func (h *httpServerAdapter) UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error) {
	var patient models.Patient

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&patient).
		Put(patientPath(patientID))
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: update patient request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (h *httpServerAdapter) AssumeControl(ctx context.Context, patientID int64) error {
	return h.postControl(ctx, patientID, "assume-control")
}

func (h *httpServerAdapter) ReleaseControl(ctx context.Context, patientID int64) error {
	return h.postControl(ctx, patientID, "release-control")
}

func (h *httpServerAdapter) postControl(ctx context.Context, patientID int64, action string) error {
	resp, err := h.authedRequest(ctx).Post(patientPath(patientID) + "/" + action)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrTransport, action, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error) {
	var metrics []models.Metric

	resp, err := h.authedRequest(ctx).
		SetResult(&metrics).
		Get(patientPath(patientID) + "/metrics")
	if err != nil {
		return nil, fmt.Errorf("%w: list metrics request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return metrics, nil
}

func (h *httpServerAdapter) ListMessages(ctx context.Context, patientID int64) ([]models.Message, error) {
	var messages []models.Message

	resp, err := h.authedRequest(ctx).
		SetResult(&messages).
		Get("/api/messages/" + formatID(patientID))
	if err != nil {
		return nil, fmt.Errorf("%w: list messages request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, patientID int64, text string) (models.Message, error) {
	var message models.Message

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendMessageRequest{Text: text}).
		SetResult(&message).
		Post("/api/messages/send/" + formatID(patientID))
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: send message request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	message.PatientID = patientID
	return message, nil
}

func (h *httpServerAdapter) Summarize(ctx context.Context, patientID int64) (string, error) {
	var summary models.SummaryResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&summary).
		Post("/api/messages/" + formatID(patientID) + "/summarize")
	if err != nil {
		return "", fmt.Errorf("%w: summarize request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return summary.Summary, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req
	}
	if token := h.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func patientPath(patientID int64) string {
	return "/api/patients/" + formatID(patientID)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
