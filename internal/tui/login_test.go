package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/mock"
	"github.com/MKhiriev/cuide-me/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel(t *testing.T) {
	creds := models.Credentials{Email: "ana@clinic.com", Password: "s3cret"}

	t.Run("empty fields are rejected locally", func(t *testing.T) {
		auth := mock.NewMockClientAuthService(gomock.NewController(t))
		m := NewLoginModel(context.Background(), auth)

		_, cmd := m.Update(enterKey)

		assert.Nil(t, cmd)
		assert.Equal(t, app.MsgCredentialsRequired, m.errMsg)
	})

	t.Run("submit", func(t *testing.T) {
		auth := mock.NewMockClientAuthService(gomock.NewController(t))
		m := NewLoginModel(context.Background(), auth)

		auth.EXPECT().Login(gomock.Any(), creds).Return(nil)

		m.inputs[0].SetValue(" ana@clinic.com ")
		m.inputs[1].SetValue("s3cret")
		_, cmd := m.Update(enterKey)
		require.True(t, m.submitting)

		_, second := m.Update(enterKey)
		assert.Nil(t, second, "a second enter while submitting is ignored")

		msgs := run(cmd)
		require.Equal(t, []tea.Msg{LoginResult{}}, msgs)

		m.Update(msgs[0])
		assert.False(t, m.submitting)
		assert.Empty(t, m.inputs[1].Value())
	})

	t.Run("server detail is shown", func(t *testing.T) {
		auth := mock.NewMockClientAuthService(gomock.NewController(t))
		m := NewLoginModel(context.Background(), auth)

		m.Update(LoginResult{Err: &adapter.ResponseError{StatusCode: 401, Detail: app.MsgInvalidEmailOrPassword}})

		assert.Equal(t, app.MsgInvalidEmailOrPassword, m.errMsg)
		assert.Contains(t, m.View(), app.MsgInvalidEmailOrPassword)
	})

	t.Run("registration notice prefills the email", func(t *testing.T) {
		m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.Update(RegisterSuccessNotice{Email: "ana@clinic.com"})

		assert.Equal(t, "ana@clinic.com", m.inputs[0].Value())
		assert.Contains(t, m.View(), app.MsgRegisterSuccess)
	})

	t.Run("session expired notice", func(t *testing.T) {
		m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.Update(SessionExpiredNotice{})

		assert.Contains(t, m.View(), app.MsgSessionExpired)
	})

	t.Run("ctrl+r opens registration", func(t *testing.T) {
		m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())
	})

	t.Run("tab moves focus", func(t *testing.T) {
		m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, 1, m.focus)

		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, 0, m.focus)
	})
}

func TestRegisterModel(t *testing.T) {
	t.Run("passwords must match", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.inputs[0].SetValue("ana@clinic.com")
		m.inputs[1].SetValue("s3cret")
		m.inputs[2].SetValue("other")
		_, cmd := m.Update(enterKey)

		assert.Nil(t, cmd)
		assert.Equal(t, app.MsgPasswordsDoNotMatch, m.errMsg)
	})

	t.Run("blank email is rejected locally", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.inputs[1].SetValue("s3cret")
		m.inputs[2].SetValue("s3cret")
		_, cmd := m.Update(enterKey)

		assert.Nil(t, cmd)
		assert.Equal(t, app.MsgCredentialsRequired, m.errMsg)
	})

	t.Run("success returns to login with a notice", func(t *testing.T) {
		auth := mock.NewMockClientAuthService(gomock.NewController(t))
		m := NewRegisterModel(context.Background(), auth)

		auth.EXPECT().Register(gomock.Any(), models.Credentials{Email: "ana@clinic.com", Password: "s3cret"}).Return(nil)

		m.inputs[0].SetValue("ana@clinic.com")
		m.inputs[1].SetValue("s3cret")
		m.inputs[2].SetValue("s3cret")
		_, cmd := m.Update(enterKey)
		msgs := run(cmd)
		require.Equal(t, []tea.Msg{RegisterResult{}}, msgs)

		_, cmd = m.Update(msgs[0])
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageLogin, Payload: RegisterSuccessNotice{Email: "ana@clinic.com"}}, cmd())
		assert.Empty(t, m.inputs[1].Value())
	})

	t.Run("duplicate email shows the server detail", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		m.Update(RegisterResult{Err: &adapter.ResponseError{StatusCode: 400, Detail: app.MsgEmailAlreadyRegistered}})

		assert.Equal(t, app.MsgEmailAlreadyRegistered, m.errMsg)
	})

	t.Run("esc goes back", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

		_, cmd := m.Update(escKey)

		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
	})
}
