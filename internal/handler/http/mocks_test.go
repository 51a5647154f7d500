package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/models"
)

// Func-field mocks of the service interfaces. A nil field panics when
// called, which fails the test that did not expect the call.

type mockAuthService struct {
	registerFn     func(ctx context.Context, credentials models.Credentials) (models.Professional, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.Professional, error)
	createTokenFn  func(ctx context.Context, professional models.Professional) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.Professional, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.Professional, error) {
	return m.registerFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Professional, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, professional models.Professional) (models.Token, error) {
	return m.createTokenFn(ctx, professional)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Professional, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockPatientService struct {
	listPatientsFn   func(ctx context.Context) ([]models.Patient, error)
	updatePatientFn  func(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error)
	assumeControlFn  func(ctx context.Context, patientID int64) (models.Patient, error)
	releaseControlFn func(ctx context.Context, patientID int64) (models.Patient, error)
	listMetricsFn    func(ctx context.Context, patientID int64) ([]models.Metric, error)
}

func (m *mockPatientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return m.listPatientsFn(ctx)
}

func (m *mockPatientService) UpdatePatient(ctx context.Context, patientID int64, update models.PatientUpdate) (models.Patient, error) {
	return m.updatePatientFn(ctx, patientID, update)
}

func (m *mockPatientService) AssumeControl(ctx context.Context, patientID int64) (models.Patient, error) {
	return m.assumeControlFn(ctx, patientID)
}

func (m *mockPatientService) ReleaseControl(ctx context.Context, patientID int64) (models.Patient, error) {
	return m.releaseControlFn(ctx, patientID)
}

func (m *mockPatientService) ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error) {
	return m.listMetricsFn(ctx, patientID)
}

type mockMessageService struct {
	listMessagesFn func(ctx context.Context, patientID int64) ([]models.Message, error)
	sendMessageFn  func(ctx context.Context, patientID int64, text string) (models.Message, error)
	summarizeFn    func(ctx context.Context, patientID int64) (string, error)
}

func (m *mockMessageService) ListMessages(ctx context.Context, patientID int64) ([]models.Message, error) {
	return m.listMessagesFn(ctx, patientID)
}

func (m *mockMessageService) SendMessage(ctx context.Context, patientID int64, text string) (models.Message, error) {
	return m.sendMessageFn(ctx, patientID, text)
}

func (m *mockMessageService) Summarize(ctx context.Context, patientID int64) (string, error) {
	return m.summarizeFn(ctx, patientID)
}

type mockWebhookService struct {
	verifyFn        func(ctx context.Context, verification models.WebhookVerification) (string, error)
	handleInboundFn func(ctx context.Context, inbound models.InboundMessage) error
}

func (m *mockWebhookService) Verify(ctx context.Context, verification models.WebhookVerification) (string, error) {
	return m.verifyFn(ctx, verification)
}

func (m *mockWebhookService) HandleInbound(ctx context.Context, inbound models.InboundMessage) error {
	return m.handleInboundFn(ctx, inbound)
}

type mockCheckInService struct {
	sendCheckInsFn func(ctx context.Context) (models.CheckInReport, error)
}

func (m *mockCheckInService) SendCheckIns(ctx context.Context) (models.CheckInReport, error) {
	return m.sendCheckInsFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// acceptToken authenticates "good-token" as professional 1.
func acceptToken() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.Professional, error) {
			if tokenString != "good-token" {
				return models.Professional{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Professional{ID: 1, Email: "ana@clinic.com"}, nil
		},
	}
}

var testHandlerConfig = &config.StructuredConfig{
	App:      config.App{CronSecret: "cron-secret"},
	WhatsApp: config.WhatsApp{AppSecret: "app-secret"},
}

// newTestHandler fills unset services with defaults so routing tests can
// run: the version service, a token checker and a real live hub.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptToken()
	}
	if svcs.LiveService == nil {
		svcs.LiveService = service.NewLiveService(logger.Nop())
	}

	return NewHandler(svcs, testHandlerConfig, logger.Nop())
}
