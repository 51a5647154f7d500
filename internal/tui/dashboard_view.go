package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	// rows used by the page frame, the conversation header and the compose line
	chromeRows = 14
)

func (m *DashboardModel) View() string {
	var body string
	if m.overlay != overlayNone {
		body = overlayBoxStyle.Render(m.overlayView())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.patientsView(), m.conversationView())
	}

	var footer strings.Builder
	if m.status != "" {
		footer.WriteString(statusStyle.Render(m.status))
		footer.WriteString("\n")
	}
	if m.errMsg != "" {
		footer.WriteString(renderError(m.errMsg))
		footer.WriteString("\n")
	}

	data := body
	if footer.Len() > 0 {
		data += "\n\n" + strings.TrimRight(footer.String(), "\n")
	}

	return renderPage("CUIDE.ME - PAINEL", data, m.hotKeys())
}

func (m *DashboardModel) hotKeys() string {
	switch {
	case m.expired:
		return ""
	case m.overlay == overlayRename:
		return "enter: salvar │ esc: cancelar"
	case m.overlay == overlaySummary:
		return "c: copiar │ esc: fechar"
	case m.overlay != overlayNone:
		return "esc: fechar"
	case m.focus == focusCompose:
		return "enter: enviar │ esc: voltar"
	}
	return "↑/↓: navegar │ enter: abrir │ i: responder │ t: alternar modo │ r: renomear │ s: resumo │ m: métricas\n" +
		"  a: enviar sugestão │ e: editar sugestão │ [/]: sugestões │ c: copiar sugestão │ pgup/pgdown: rolar │ L: sair da conta │ q: fechar │ f1: versão"
}

func (m *DashboardModel) patientsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pacientes"))
	if m.loading {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	if !m.loading && len(m.patients) == 0 {
		b.WriteString(helpStyle.Render("Nenhum paciente"))
	}

	nameWidth := patientsPaneWidth - 10
	for i, patient := range m.patients {
		cursor := "  "
		if i == m.cursor && m.focus == focusPatients {
			cursor = "> "
		}

		alert := " "
		if patient.HasAlert {
			alert = alertStyle.Render("●")
		}

		line := fmt.Sprintf("%s%s %-*s %s", cursor, alert, nameWidth, fitText(patient.DisplayName(), nameWidth), modeTag(patient.Status))
		if m.isSelected(patient.ID) {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	style := paneStyle
	if m.focus == focusPatients {
		style = focusedPaneStyle
	}
	return style.Width(patientsPaneWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *DashboardModel) conversationView() string {
	width := m.conversationWidth()

	if m.selected == nil {
		return paneStyle.Width(width).Render(helpStyle.Render(app.MsgNoPatientSelected))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selected.DisplayName()))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(m.selected.PhoneNumber))
	b.WriteString("\n")
	b.WriteString("Modo: ")
	b.WriteString(modeLabel(m.selected.Status))
	if m.liveDown {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(app.MsgLiveDisconnected))
	} else if m.liveCh != nil {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render("● ao vivo"))
	}
	if m.historyLoading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(m.conversation.View())
	b.WriteString("\n\n")

	switch {
	case m.selected.Status != models.StatusManual:
		b.WriteString(helpStyle.Render("Modo automático: o assistente responde ao paciente."))
	case m.sending:
		b.WriteString("> " + m.compose.Value() + " " + m.spinner.View())
	default:
		b.WriteString(m.compose.View())
	}

	style := paneStyle
	if m.focus == focusCompose {
		style = focusedPaneStyle
	}
	return style.Width(width).Render(b.String())
}

func (m *DashboardModel) overlayView() string {
	var b strings.Builder

	switch m.overlay {
	case overlayRename:
		b.WriteString(titleStyle.Render("Editar nome do paciente"))
		b.WriteString("\n\n")
		b.WriteString("[")
		b.WriteString(m.renameInput.View())
		b.WriteString("]")
		if m.renaming {
			b.WriteString("\n\nSalvando...")
		}

	case overlaySummary:
		b.WriteString(titleStyle.Render("Resumo da conversa"))
		b.WriteString("\n\n")
		if m.summaryLoading {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
			b.WriteString(app.MsgGeneratingSummary)
		} else {
			b.WriteString(lipgloss.NewStyle().Width(m.overlayWidth()).Render(m.summary))
		}

	case overlayMetrics:
		b.WriteString(titleStyle.Render("Métricas"))
		b.WriteString("\n\n")
		switch {
		case m.metricsLoading:
			b.WriteString(m.spinner.View())
		case len(m.metrics) == 0 && m.overlayErr == "":
			b.WriteString(helpStyle.Render(app.MsgNoMetrics))
		default:
			for _, metric := range m.metrics {
				b.WriteString(formatMetric(metric))
				b.WriteString("\n")
			}
		}
	}

	if m.overlayErr != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.overlayErr))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderConversation renders the messages in arrival order.
func (m *DashboardModel) renderConversation() string {
	if len(m.messages) == 0 {
		if m.historyLoading {
			return ""
		}
		return helpStyle.Render("Nenhuma mensagem ainda.")
	}

	textWidth := m.conversation.Width - 2
	if textWidth < 10 {
		textWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(textWidth)

	var b strings.Builder
	for i, message := range m.messages {
		label, style := "Paciente", patientMsgStyle
		if message.Sender == models.SenderProfessional {
			label, style = "Você", ownMsgStyle
		}

		b.WriteString(helpStyle.Render(formatTimestamp(message.Timestamp) + " " + label))
		b.WriteString("\n")
		b.WriteString(style.Render(wrap.Render(message.Text)))
		b.WriteString("\n")

		if suggestion := message.Suggestion(); suggestion != "" {
			marker := "  "
			if i == m.suggestionIdx {
				marker = "▶ "
			}
			b.WriteString(suggestionStyle.Render(wrap.Render(marker + "Sugestão da IA: " + suggestion)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) refreshConversation(gotoBottom bool) {
	m.conversation.SetContent(m.renderConversation())
	if gotoBottom {
		m.conversation.GotoBottom()
	}
}

func (m *DashboardModel) resize() {
	width := m.conversationWidth()
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	m.conversation.Width = width - 4
	m.conversation.Height = max(height-chromeRows, 3)
	m.compose.Width = width - 8
}

func (m *DashboardModel) conversationWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	// page padding and the patients pane with its border
	return max(width-patientsPaneWidth-10, 30)
}

func (m *DashboardModel) overlayWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	return max(width-16, 30)
}

func modeTag(status models.PatientStatus) string {
	if status == models.StatusManual {
		return "[M]"
	}
	return "[A]"
}

func modeLabel(status models.PatientStatus) string {
	if status == models.StatusManual {
		return "manual"
	}
	return "automático"
}

// clipboardWrite is replaced in tests; headless machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}
