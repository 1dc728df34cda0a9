// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginRememberField is the focus index of the "Recordarme" checkbox that
// follows the two text inputs.
const loginRememberField = 2

// LoginModel renders the login form and submits it through the auth service.
// A successful submit yields an [AuthResult] that [RootModel] turns into the
// end of the login flow.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	remember   bool
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "usuario"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "contraseña"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = service.UserMessage(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case " ":
			if m.focus == loginRememberField {
				m.remember = !m.remember
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(m.form())
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(formRow("Usuario", 11, "["+m.inputs[0].View()+"]"))
	b.WriteString(formRow("Contraseña", 11, "["+m.inputs[1].View()+"]"))
	b.WriteString(formRow(cursor(m.focus == loginRememberField)+"Recordarme", 11, checkbox(m.remember)))

	if m.submitting {
		b.WriteString("\n[Entrando...]\n")
	} else {
		b.WriteString("\n[Entrar]\n")
	}
	b.WriteString(errorLines(m.errMsg))

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"),
		"esc: volver │ tab: siguiente campo │ espacio: marcar │ enter: entrar")
}

func (m *LoginModel) form() models.LoginForm {
	return models.LoginForm{
		Username:   m.inputs[0].Value(),
		Password:   m.inputs[1].Value(),
		RememberMe: m.remember,
	}
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, form)
		return AuthResult{Session: session, Err: err}
	}
}

// setFocus moves focus over the text inputs and the trailing checkbox.
func (m *LoginModel) setFocus(next int) {
	total := len(m.inputs) + 1
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (next%total + total) % total
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
