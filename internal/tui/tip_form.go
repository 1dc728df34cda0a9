package tui

import (
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tipForm has a one-line title and a multi-line description. Focus 0 is
// the title, 1 the description.
type tipForm struct {
	title       textinput.Model
	description textarea.Model
	focus       int
	saving      bool
	errMsg      string
}

func newTipForm() tipForm {
	title := textinput.New()
	title.Placeholder = "al menos 15 caracteres"
	title.CharLimit = 120
	title.Width = 50
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = "al menos 30 caracteres"
	desc.CharLimit = 2000
	desc.ShowLineNumbers = false
	desc.SetWidth(56)
	desc.SetHeight(5)

	return tipForm{title: title, description: desc}
}

func (f tipForm) form() models.TipForm {
	return models.TipForm{
		Title:       f.title.Value(),
		Description: f.description.Value(),
	}
}

func (f tipForm) toggleFocus() tipForm {
	if f.focus == 0 {
		f.focus = 1
		f.title.Blur()
		f.description.Focus()
		return f
	}
	f.focus = 0
	f.description.Blur()
	f.title.Focus()
	return f
}

func (f tipForm) updateInput(msg tea.Msg) (tipForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.title, cmd = f.title.Update(msg)
		return f, cmd
	}
	f.description, cmd = f.description.Update(msg)
	return f, cmd
}

func (f tipForm) View() string {
	var b strings.Builder
	b.WriteString(cursor(f.focus == 0))
	b.WriteString(" Título\n  [")
	b.WriteString(f.title.View())
	b.WriteString("]\n\n")
	b.WriteString(cursor(f.focus == 1))
	b.WriteString(" Descripción\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")

	if f.saving {
		b.WriteString("\n[Publicando...]\n")
	} else {
		b.WriteString("\n[Publicar consejo]\n")
	}
	b.WriteString(errorLines(f.errMsg))

	return strings.TrimRight(b.String(), "\n")
}
