package tui

import "strings"

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc: cerrar"
	return overlayBoxStyle.Render(content)
}

// infoOverlayModel shows a multi-line notice, e.g. a purchase summary or the
// full text of a tip.
type infoOverlayModel struct {
	title   string
	message string
	hotKeys string
}

func (m infoOverlayModel) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.message)
	b.WriteString("\n\n")
	if m.hotKeys != "" {
		b.WriteString(m.hotKeys)
		b.WriteString(" │ ")
	}
	b.WriteString("enter / esc: cerrar")
	return overlayBoxStyle.Render(b.String())
}

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "s/y: sí    n: no"
	return overlayBoxStyle.Render(content)
}
