package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardFocus int

const (
	focusPatients dashboardFocus = iota
	focusCompose
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayRename
	overlaySummary
	overlayMetrics
)

// Delays are variables so tests can shorten them.
var (
	sessionExpiredDelay = 3 * time.Second
	statusClearDelay    = 3 * time.Second
)

// DashboardModel is the main screen: the patient list on the left and the
// conversation of the selected patient on the right.
//
// Every request runs in a tea.Cmd and its result message carries the patient
// it was issued for. Results for a patient that is no longer selected are
// dropped. The live channel of the selected patient is bound to a context
// that is cancelled on patient change, logout, session expiry and quit.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	patients []models.Patient
	cursor   int
	selected *models.Patient
	loading  bool

	messages       []models.Message
	historyLoading bool
	// suggestionIdx points into messages; -1 when no message has a suggestion.
	suggestionIdx int

	focus   dashboardFocus
	compose textinput.Model
	sending bool

	overlay          overlayKind
	overlayPatientID int64
	overlayErr       string
	renameInput      textinput.Model
	renaming         bool
	summary          string
	summaryLoading   bool
	metrics          []models.Metric
	metricsLoading   bool
	spinner          spinner.Model

	conversation  viewport.Model
	width, height int

	liveCancel context.CancelFunc
	liveGen    uint64
	liveCh     <-chan models.Message
	liveDown   bool

	status  string
	errMsg  string
	expired bool
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) *DashboardModel {
	m := &DashboardModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
	}
	m.reset()
	return m
}

func (m *DashboardModel) reset() {
	m.closeLive()

	compose := textinput.New()
	compose.Placeholder = "Digite sua mensagem..."
	compose.CharLimit = 4096

	rename := textinput.New()
	rename.Placeholder = "nome do paciente"
	rename.CharLimit = 120
	rename.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m.patients = nil
	m.cursor = 0
	m.selected = nil
	m.loading = true
	m.messages = nil
	m.historyLoading = false
	m.suggestionIdx = -1
	m.focus = focusPatients
	m.compose = compose
	m.sending = false
	m.overlay = overlayNone
	m.overlayPatientID = 0
	m.overlayErr = ""
	m.renameInput = rename
	m.renaming = false
	m.summary = ""
	m.summaryLoading = false
	m.metrics = nil
	m.metricsLoading = false
	m.spinner = s
	m.conversation = viewport.New(0, 0)
	m.liveDown = false
	m.status = ""
	m.errMsg = ""
	m.expired = false
	m.resize()
}

// Init resets the screen and fetches the patient list. It runs every time
// the dashboard is entered.
func (m *DashboardModel) Init() tea.Cmd {
	m.reset()
	return tea.Batch(m.cmdLoadPatients(), m.spinner.Tick)
}

// Close cancels the live channel.
func (m *DashboardModel) Close() {
	m.closeLive()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshConversation(false)
		return m, nil

	case tea.KeyMsg:
		if m.expired {
			return m, nil
		}
		switch {
		case m.overlay != overlayNone:
			return m, m.updateOverlay(msg)
		case m.focus == focusCompose:
			return m, m.updateCompose(msg)
		default:
			return m, m.updatePatients(msg)
		}

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case patientsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.patients = msg.patients
		m.clampCursor()
		return m, nil

	case historyLoadedMsg:
		if !m.isSelected(msg.patientID) {
			m.logger.Debug().Int64("patient_id", msg.patientID).Msg("stale history dropped")
			return m, nil
		}
		m.historyLoading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.messages = mergeHistory(msg.messages, m.messages)
		m.suggestionIdx = lastSuggestion(m.messages)
		// the server clears the alerts of a conversation once it is read
		m.patchPatient(msg.patientID, func(p *models.Patient) { p.HasAlert = false })
		m.refreshConversation(true)
		return m, nil

	case liveOpenedMsg:
		// a subscription replaced or closed meanwhile lost its context
		if msg.gen != m.liveGen || !m.isSelected(msg.patientID) {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.handleError(msg.err)
			}
			m.logger.Warn().Err(msg.err).Int64("patient_id", msg.patientID).Msg("live channel not opened")
			m.liveDown = true
			return m, nil
		}
		m.liveCh = msg.ch
		m.liveDown = false
		return m, waitForLive(msg.patientID, msg.ch)

	case liveMessageMsg:
		if msg.ch != m.liveCh || !m.isSelected(msg.patientID) {
			return m, nil
		}
		m.appendMessage(msg.message)
		return m, waitForLive(msg.patientID, msg.ch)

	case liveClosedMsg:
		if msg.ch != m.liveCh || !m.isSelected(msg.patientID) {
			return m, nil
		}
		m.liveCh = nil
		m.liveDown = true
		return m, nil

	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		if !m.isSelected(msg.patientID) {
			return m, nil
		}
		m.errMsg = ""
		m.appendMessage(msg.message)
		if msg.fromCompose {
			m.compose.SetValue("")
		}
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.errMsg = ""
		m.patchPatient(msg.patientID, func(p *models.Patient) { p.Status = msg.status })
		if m.isSelected(msg.patientID) && msg.status != models.StatusManual {
			m.blurCompose()
		}
		return m, nil

	case renamedMsg:
		m.renaming = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.handleError(msg.err)
			}
			m.overlayErr = service.UserMessage(msg.err)
			return m, nil
		}
		m.replacePatient(msg.patient)
		if m.overlay == overlayRename && m.overlayPatientID == msg.patient.ID {
			m.closeOverlay()
		}
		return m, nil

	case summaryMsg:
		if m.overlay != overlaySummary || m.overlayPatientID != msg.patientID {
			return m, nil
		}
		m.summaryLoading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.handleError(msg.err)
			}
			m.summary = app.MsgErrorPrefix + service.UserMessage(msg.err)
			return m, nil
		}
		m.summary = msg.summary
		return m, nil

	case metricsLoadedMsg:
		if m.overlay != overlayMetrics || m.overlayPatientID != msg.patientID {
			return m, nil
		}
		m.metricsLoading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.handleError(msg.err)
			}
			m.overlayErr = service.UserMessage(msg.err)
			return m, nil
		}
		m.metrics = msg.metrics
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			m.errMsg = app.MsgUnexpectedError
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case logoutDoneMsg:
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
	}

	// cursor blink and other widget messages
	var cmd tea.Cmd
	switch {
	case m.overlay == overlayRename:
		m.renameInput, cmd = m.renameInput.Update(msg)
	case m.focus == focusCompose:
		m.compose, cmd = m.compose.Update(msg)
	}
	return m, cmd
}

func (m *DashboardModel) updatePatients(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.quit):
		m.closeLive()
		return tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.patients)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if m.cursor < len(m.patients) {
			return m.selectPatient(m.patients[m.cursor])
		}
	case key.Matches(msg, keys.compose):
		return m.focusComposeInput()
	case key.Matches(msg, keys.toggle):
		if m.selected == nil {
			m.errMsg = app.MsgNoPatientSelected
			return nil
		}
		return m.cmdToggle(*m.selected)
	case key.Matches(msg, keys.rename):
		return m.openRename()
	case key.Matches(msg, keys.summary):
		return m.openSummary()
	case key.Matches(msg, keys.metrics):
		return m.openMetrics()
	case key.Matches(msg, keys.sendSugg):
		suggestion, ok := m.currentSuggestion()
		if !ok {
			return nil
		}
		m.sending = true
		return m.cmdSend(m.selected.ID, suggestion, false)
	case key.Matches(msg, keys.editSugg):
		suggestion, ok := m.currentSuggestion()
		if !ok {
			return nil
		}
		cmd := m.focusComposeInput()
		if m.focus == focusCompose {
			m.compose.SetValue(suggestion)
			m.compose.CursorEnd()
		}
		return cmd
	case key.Matches(msg, keys.prevSugg):
		m.moveSuggestion(-1)
	case key.Matches(msg, keys.nextSugg):
		m.moveSuggestion(1)
	case key.Matches(msg, keys.copy):
		suggestion, ok := m.currentSuggestion()
		if !ok {
			return nil
		}
		return cmdCopy(suggestion)
	case key.Matches(msg, keys.scrollUp):
		m.conversation.SetYOffset(m.conversation.YOffset - m.conversation.Height/2)
	case key.Matches(msg, keys.scrollDown):
		m.conversation.SetYOffset(m.conversation.YOffset + m.conversation.Height/2)
	case key.Matches(msg, keys.logout):
		return m.cmdLogout()
	}
	return nil
}

func (m *DashboardModel) updateCompose(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.blurCompose()
		return nil
	case key.Matches(msg, keys.enter):
		if m.sending || m.selected == nil {
			return nil
		}
		text := m.compose.Value()
		if strings.TrimSpace(text) == "" {
			m.errMsg = app.MsgEmptyMessage
			return nil
		}
		m.sending = true
		return m.cmdSend(m.selected.ID, text, true)
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return cmd
}

func (m *DashboardModel) updateOverlay(msg tea.KeyMsg) tea.Cmd {
	switch m.overlay {
	case overlayRename:
		switch {
		case key.Matches(msg, keys.esc):
			m.closeOverlay()
			return nil
		case key.Matches(msg, keys.enter):
			if m.renaming {
				return nil
			}
			name := strings.TrimSpace(m.renameInput.Value())
			if name == "" {
				m.overlayErr = app.MsgEmptyName
				return nil
			}
			m.overlayErr = ""
			m.renaming = true
			return m.cmdRename(m.overlayPatientID, name)
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		return cmd

	case overlaySummary:
		switch {
		case key.Matches(msg, keys.esc, keys.enter):
			m.closeOverlay()
		case key.Matches(msg, keys.copy):
			if !m.summaryLoading && m.summary != "" {
				return cmdCopy(m.summary)
			}
		}

	case overlayMetrics:
		if key.Matches(msg, keys.esc, keys.enter) {
			m.closeOverlay()
		}
	}
	return nil
}

func (m *DashboardModel) selectPatient(p models.Patient) tea.Cmd {
	m.closeLive()

	selected := p
	m.selected = &selected
	m.messages = nil
	m.suggestionIdx = -1
	m.historyLoading = true
	m.errMsg = ""
	m.liveDown = false
	m.compose.SetValue("")
	m.blurCompose()
	m.refreshConversation(true)

	liveCtx, cancel := context.WithCancel(m.ctx)
	m.liveCancel = cancel

	return tea.Batch(m.cmdLoadHistory(p.ID), m.cmdSubscribe(liveCtx, p.ID, m.liveGen), m.spinner.Tick)
}

func (m *DashboardModel) focusComposeInput() tea.Cmd {
	if m.selected == nil {
		m.errMsg = app.MsgNoPatientSelected
		return nil
	}
	if m.selected.Status != models.StatusManual {
		m.errMsg = app.MsgComposeManualOnly
		return nil
	}
	m.errMsg = ""
	m.focus = focusCompose
	return m.compose.Focus()
}

func (m *DashboardModel) blurCompose() {
	m.compose.Blur()
	m.focus = focusPatients
}

func (m *DashboardModel) openRename() tea.Cmd {
	if m.selected == nil {
		m.errMsg = app.MsgNoPatientSelected
		return nil
	}
	m.openOverlay(overlayRename)
	if m.selected.Name != nil {
		m.renameInput.SetValue(*m.selected.Name)
	} else {
		m.renameInput.SetValue("")
	}
	m.renameInput.CursorEnd()
	return m.renameInput.Focus()
}

func (m *DashboardModel) openSummary() tea.Cmd {
	if m.selected == nil {
		m.errMsg = app.MsgNoPatientSelected
		return nil
	}
	m.openOverlay(overlaySummary)
	m.summary = ""
	m.summaryLoading = true
	return tea.Batch(m.cmdSummarize(m.selected.ID), m.spinner.Tick)
}

func (m *DashboardModel) openMetrics() tea.Cmd {
	if m.selected == nil {
		m.errMsg = app.MsgNoPatientSelected
		return nil
	}
	m.openOverlay(overlayMetrics)
	m.metrics = nil
	m.metricsLoading = true
	return tea.Batch(m.cmdLoadMetrics(m.selected.ID), m.spinner.Tick)
}

func (m *DashboardModel) openOverlay(kind overlayKind) {
	m.overlay = kind
	m.overlayPatientID = m.selected.ID
	m.overlayErr = ""
}

func (m *DashboardModel) closeOverlay() {
	m.overlay = overlayNone
	m.overlayPatientID = 0
	m.overlayErr = ""
	m.renaming = false
	m.summaryLoading = false
	m.metricsLoading = false
	m.renameInput.Blur()
}

// handleError shows err. A session expiry tears the screen down and returns
// to the login page after sessionExpiredDelay.
func (m *DashboardModel) handleError(err error) tea.Cmd {
	if !errors.Is(err, service.ErrSessionExpired) {
		m.errMsg = service.UserMessage(err)
		return nil
	}
	if m.expired {
		return nil
	}

	m.logger.Info().Msg("session expired")
	m.expired = true
	m.closeLive()
	m.closeOverlay()
	m.blurCompose()
	m.errMsg = app.MsgSessionExpired

	return tea.Tick(sessionExpiredDelay, func(time.Time) tea.Msg {
		return NavigateTo{Page: pageLogin, Payload: SessionExpiredNotice{}}
	})
}

func (m *DashboardModel) closeLive() {
	m.liveGen++
	if m.liveCancel != nil {
		m.liveCancel()
		m.liveCancel = nil
	}
	m.liveCh = nil
}

func (m *DashboardModel) isSelected(patientID int64) bool {
	return m.selected != nil && m.selected.ID == patientID
}

func (m *DashboardModel) busy() bool {
	return m.loading || m.historyLoading || m.summaryLoading || m.metricsLoading
}

// appendMessage adds message at the end. A record already shown (same id)
// is ignored.
func (m *DashboardModel) appendMessage(message models.Message) {
	for _, existing := range m.messages {
		if existing.ID == message.ID {
			return
		}
	}
	m.messages = append(m.messages, message)
	if message.Suggestion() != "" {
		m.suggestionIdx = len(m.messages) - 1
	}
	m.refreshConversation(true)
}

// patchPatient applies fn to the list entry and to the selected patient.
func (m *DashboardModel) patchPatient(patientID int64, fn func(p *models.Patient)) {
	for i := range m.patients {
		if m.patients[i].ID == patientID {
			fn(&m.patients[i])
		}
	}
	if m.isSelected(patientID) {
		fn(m.selected)
	}
}

// replacePatient swaps in the record returned by the server.
func (m *DashboardModel) replacePatient(patient models.Patient) {
	m.patchPatient(patient.ID, func(p *models.Patient) { *p = patient })
}

func (m *DashboardModel) clampCursor() {
	if m.cursor >= len(m.patients) {
		m.cursor = len(m.patients) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *DashboardModel) currentSuggestion() (string, bool) {
	if m.selected == nil {
		m.errMsg = app.MsgNoPatientSelected
		return "", false
	}
	if m.suggestionIdx < 0 || m.suggestionIdx >= len(m.messages) {
		m.errMsg = app.MsgNoSuggestion
		return "", false
	}
	return m.messages[m.suggestionIdx].Suggestion(), true
}

func (m *DashboardModel) moveSuggestion(step int) {
	for i := m.suggestionIdx + step; i >= 0 && i < len(m.messages); i += step {
		if m.messages[i].Suggestion() != "" {
			m.suggestionIdx = i
			m.refreshConversation(false)
			return
		}
	}
}

// mergeHistory returns history followed by the live records that arrived
// before it and are not part of it.
func mergeHistory(history, received []models.Message) []models.Message {
	seen := make(map[int64]struct{}, len(history))
	for _, message := range history {
		seen[message.ID] = struct{}{}
	}

	merged := append([]models.Message(nil), history...)
	for _, message := range received {
		if _, ok := seen[message.ID]; !ok {
			merged = append(merged, message)
		}
	}
	return merged
}

func lastSuggestion(messages []models.Message) int {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Suggestion() != "" {
			return i
		}
	}
	return -1
}

func (m *DashboardModel) cmdLoadPatients() tea.Cmd {
	ctx, patients := m.ctx, m.services.PatientService

	return func() tea.Msg {
		list, err := patients.List(ctx)
		return patientsLoadedMsg{patients: list, err: err}
	}
}

func (m *DashboardModel) cmdLoadHistory(patientID int64) tea.Cmd {
	ctx, conversations := m.ctx, m.services.ConversationService

	return func() tea.Msg {
		messages, err := conversations.History(ctx, patientID)
		return historyLoadedMsg{patientID: patientID, messages: messages, err: err}
	}
}

func (m *DashboardModel) cmdSubscribe(ctx context.Context, patientID int64, gen uint64) tea.Cmd {
	conversations := m.services.ConversationService

	return func() tea.Msg {
		ch, err := conversations.Subscribe(ctx, patientID)
		return liveOpenedMsg{patientID: patientID, gen: gen, ch: ch, err: err}
	}
}

// waitForLive reads one record from the live channel. The dashboard issues
// it again after every record while the patient stays selected.
func waitForLive(patientID int64, ch <-chan models.Message) tea.Cmd {
	return func() tea.Msg {
		message, ok := <-ch
		if !ok {
			return liveClosedMsg{patientID: patientID, ch: ch}
		}
		return liveMessageMsg{patientID: patientID, message: message, ch: ch}
	}
}

func (m *DashboardModel) cmdSend(patientID int64, text string, fromCompose bool) tea.Cmd {
	ctx, conversations := m.ctx, m.services.ConversationService

	return func() tea.Msg {
		message, err := conversations.Send(ctx, patientID, text)
		return messageSentMsg{patientID: patientID, message: message, fromCompose: fromCompose, err: err}
	}
}

func (m *DashboardModel) cmdToggle(patient models.Patient) tea.Cmd {
	ctx, patients := m.ctx, m.services.PatientService

	return func() tea.Msg {
		status, err := patients.ToggleControl(ctx, patient)
		return toggledMsg{patientID: patient.ID, status: status, err: err}
	}
}

func (m *DashboardModel) cmdRename(patientID int64, name string) tea.Cmd {
	ctx, patients := m.ctx, m.services.PatientService

	return func() tea.Msg {
		patient, err := patients.Rename(ctx, patientID, name)
		return renamedMsg{patient: patient, err: err}
	}
}

func (m *DashboardModel) cmdSummarize(patientID int64) tea.Cmd {
	ctx, conversations := m.ctx, m.services.ConversationService

	return func() tea.Msg {
		summary, err := conversations.Summarize(ctx, patientID)
		return summaryMsg{patientID: patientID, summary: summary, err: err}
	}
}

func (m *DashboardModel) cmdLoadMetrics(patientID int64) tea.Cmd {
	ctx, patients := m.ctx, m.services.PatientService

	return func() tea.Msg {
		metrics, err := patients.ListMetrics(ctx, patientID)
		return metricsLoadedMsg{patientID: patientID, metrics: metrics, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	m.closeLive()
	ctx, auth, log := m.ctx, m.services.AuthService, m.logger

	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			log.Err(err).Msg("logout failed")
		}
		return logoutDoneMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func formatMetric(metric models.Metric) string {
	return fmt.Sprintf("%s  %-16s %g", formatTimestamp(metric.Timestamp), metric.Type, metric.Value)
}
