// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the login screen. It renders an email and a password input
// and dispatches an async login command on submit. On success a
// [LoginResult] is produced and [RootModel] opens the dashboard.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel] with the email input focused and the
// password input masked.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	inputs := []textinput.Model{
		newFormInput("email", 254, false),
		newFormInput("senha", 256, true),
	}
	inputs[0].Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: inputs,
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]           clears submitting state; shows the error or resets the form.
//   - [RegisterSuccessNotice] shows the registration confirmation.
//   - [SessionExpiredNotice]  shows the expired-session notice.
//   - ctrl+r                  opens the registration screen.
//   - tab, shift+tab          move focus between inputs.
//   - enter                   dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = service.UserMessage(msg.Err)
			return m, nil
		}
		m.resetForm()
		return m, nil
	case RegisterSuccessNotice:
		m.errMsg = ""
		m.notice = app.MsgRegisterSuccess
		m.inputs[0].SetValue(msg.Email)
		m.inputs[0].CursorEnd()
		return m, nil
	case SessionExpiredNotice:
		m.notice = app.MsgSessionExpired
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.register):
			m.errMsg, m.notice = "", ""
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Campo   │ Valor\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Senha   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Entrando...]\n")
	} else {
		b.WriteString("\n[Entrar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CUIDE.ME - ENTRAR", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ enter: entrar │ ctrl+r: registrar │ f1: versão")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Login(ctx, models.Credentials{Email: email, Password: password})
		return LoginResult{Err: err}
	}
}

func (m *LoginModel) resetForm() {
	m.errMsg, m.notice = "", ""
	m.inputs[1].SetValue("")
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusNext() {
	m.focus = cycleFocus(m.inputs, m.focus, 1)
}

func (m *LoginModel) focusPrev() {
	m.focus = cycleFocus(m.inputs, m.focus, -1)
}
