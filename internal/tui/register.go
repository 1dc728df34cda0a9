package tui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regName = iota
	regLastName
	regEmail
	regConfirmEmail
	regBirthDate
	regUsername
	regPassword
	regImagePath
	regPrivacy
)

var registerLabels = []string{
	"Nombre",
	"Apellidos",
	"Email",
	"Confirmar email",
	"Nacimiento",
	"Usuario",
	"Contraseña",
	"Foto (ruta)",
}

// RegisterModel collects a new account. The privacy checkbox is the last
// focusable field; the profile picture is read from a local path on submit.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	privacy    bool
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	inputs := make([]textinput.Model, len(registerLabels))
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 128
		in.Width = 40
		inputs[i] = in
	}
	inputs[regEmail].Placeholder = "nombre@dominio.com"
	inputs[regBirthDate].Placeholder = "AAAA-MM-DD (opcional)"
	inputs[regUsername].CharLimit = 64
	inputs[regPassword].CharLimit = 256
	inputs[regPassword].EchoMode = textinput.EchoPassword
	inputs[regPassword].EchoCharacter = '*'
	inputs[regImagePath].Placeholder = "opcional"
	inputs[regImagePath].CharLimit = 1024
	inputs[regName].Focus()

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
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.status = ""
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
			if m.focus == regPrivacy {
				m.privacy = !m.privacy
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdRegister(m.form(), strings.TrimSpace(m.inputs[regImagePath].Value()))
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	for i, label := range registerLabels {
		b.WriteString(formRow(label, 15, "["+m.inputs[i].View()+"]"))
	}
	b.WriteString("\n")
	b.WriteString(cursor(m.focus == regPrivacy))
	b.WriteString(" ")
	b.WriteString(checkbox(m.privacy))
	b.WriteString(" Acepto la política de privacidad\n")

	if m.submitting {
		b.WriteString("\n[Registrando...]\n")
	} else {
		b.WriteString("\n[Registrarse]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(errorLines(m.errMsg))

	return renderPage("REGISTRO", strings.TrimRight(b.String(), "\n"),
		"esc: volver │ tab: siguiente campo │ espacio: marcar │ enter: registrarse")
}

func (m *RegisterModel) form() models.RegistrationForm {
	return models.RegistrationForm{
		Name:            m.inputs[regName].Value(),
		LastName:        m.inputs[regLastName].Value(),
		Email:           m.inputs[regEmail].Value(),
		ConfirmEmail:    m.inputs[regConfirmEmail].Value(),
		BirthDate:       m.inputs[regBirthDate].Value(),
		Username:        m.inputs[regUsername].Value(),
		Password:        m.inputs[regPassword].Value(),
		AcceptedPrivacy: m.privacy,
	}
}

func (m *RegisterModel) cmdRegister(form models.RegistrationForm, imagePath string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		if imagePath != "" {
			img, err := readProfileImage(imagePath)
			if err != nil {
				return AuthResult{Err: err}
			}
			form.ProfilePicture = img
		}

		session, err := auth.Register(ctx, form)
		return AuthResult{Session: session, Registered: true, Err: err}
	}
}

func (m *RegisterModel) setFocus(next int) {
	total := len(m.inputs) + 1
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (next%total + total) % total
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func readProfileImage(path string) (*models.ProfileImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrImageEncoding, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &models.ProfileImage{
		FileName: filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}, nil
}
