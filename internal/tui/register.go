package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration screen. On success it goes back to the
// login page with a [RegisterSuccessNotice]; on failure the server detail is
// shown verbatim.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	inputs := []textinput.Model{
		newFormInput("email", 254, false),
		newFormInput("senha", 256, true),
		newFormInput("repita a senha", 256, true),
	}
	inputs[0].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: inputs,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = service.UserMessage(result.Err)
			return m, nil
		}

		email := strings.TrimSpace(m.inputs[0].Value())
		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: RegisterSuccessNotice{Email: email}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if email == "" || password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}
			if password != repeat {
				m.errMsg = app.MsgPasswordsDoNotMatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Campo          │ Valor\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	b.WriteString("Email          │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Senha          │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repita a senha │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Registrando...]\n")
	} else {
		b.WriteString("\n[Registrar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CUIDE.ME - REGISTRO", strings.TrimRight(b.String(), "\n"), "esc: voltar │ tab: próximo campo │ enter: registrar")
}

func (m *RegisterModel) cmdRegister(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, models.Credentials{Email: email, Password: password})
		return RegisterResult{Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.focus = cycleFocus(m.inputs, m.focus, 1)
}

func (m *RegisterModel) focusPrev() {
	m.focus = cycleFocus(m.inputs, m.focus, -1)
}
