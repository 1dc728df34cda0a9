package tui

import (
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ckFullName = iota
	ckEmail
	ckCardNumber
	ckCardholder
	ckExpiration
	ckCVV
)

// ckCardType marks the card type selector in checkoutFocusOrder.
const ckCardType = -1

var checkoutFocusOrder = []int{ckFullName, ckEmail, ckCardType, ckCardNumber, ckCardholder, ckExpiration, ckCVV}

var checkoutLabels = map[int]string{
	ckFullName:   "Nombre completo",
	ckEmail:      "Email",
	ckCardType:   "Tipo de tarjeta",
	ckCardNumber: "Nº de tarjeta",
	ckCardholder: "Titular",
	ckExpiration: "Caducidad",
	ckCVV:        "CVV",
}

// checkoutForm is the payment form of the selected package. cardType 0
// means nothing selected; i > 0 points at models.CardTypes[i-1].
type checkoutForm struct {
	pkg models.Package

	inputs     []textinput.Model
	cardType   int
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func newCheckoutForm(pkg models.Package) checkoutForm {
	inputs := make([]textinput.Model, ckCVV+1)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 128
		in.Width = 32
		inputs[i] = in
	}
	inputs[ckEmail].Placeholder = "nombre@dominio.com"
	inputs[ckCardNumber].CharLimit = 32
	inputs[ckExpiration].Placeholder = "AAAA-MM-DD"
	inputs[ckExpiration].CharLimit = 10
	inputs[ckCVV].CharLimit = 4
	inputs[ckCVV].EchoMode = textinput.EchoPassword
	inputs[ckCVV].EchoCharacter = '*'
	inputs[ckFullName].Focus()

	return checkoutForm{pkg: pkg, inputs: inputs}
}

func (f checkoutForm) form() models.PaymentForm {
	cardType := ""
	if f.cardType > 0 {
		cardType = models.CardTypes[f.cardType-1]
	}
	return models.PaymentForm{
		FullName:       f.inputs[ckFullName].Value(),
		Email:          f.inputs[ckEmail].Value(),
		CardType:       cardType,
		CardNumber:     f.inputs[ckCardNumber].Value(),
		CardholderName: f.inputs[ckCardholder].Value(),
		ExpirationDate: f.inputs[ckExpiration].Value(),
		CVV:            f.inputs[ckCVV].Value(),
	}
}

// clear empties every field and puts focus back on the first one.
func (f checkoutForm) clear() checkoutForm {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.cardType = 0
	f.errMsg = ""
	return f.setFocus(0)
}

func (f checkoutForm) setFocus(next int) checkoutForm {
	total := len(checkoutFocusOrder)
	if idx := checkoutFocusOrder[f.focus]; idx != ckCardType {
		f.inputs[idx].Blur()
	}
	f.focus = (next%total + total) % total
	if idx := checkoutFocusOrder[f.focus]; idx != ckCardType {
		f.inputs[idx].Focus()
	}
	return f
}

func (f checkoutForm) onCardType() bool {
	return checkoutFocusOrder[f.focus] == ckCardType
}

func (f checkoutForm) cycleCardType(step int) checkoutForm {
	total := len(models.CardTypes) + 1
	f.cardType = ((f.cardType+step)%total + total) % total
	return f
}

func (f checkoutForm) updateInput(msg tea.Msg) (checkoutForm, tea.Cmd) {
	idx := checkoutFocusOrder[f.focus]
	if idx == ckCardType {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return f, cmd
}

func (f checkoutForm) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.pkg.Name))
	b.WriteString("  ")
	b.WriteString(priceStyle.Render(f.pkg.Price))
	b.WriteString("\n\n")

	for pos, idx := range checkoutFocusOrder {
		label := cursor(pos == f.focus) + checkoutLabels[idx]
		if idx == ckCardType {
			b.WriteString(formRow(label, 17, "‹ "+cardTypeLabel(f.cardType)+" ›"))
			continue
		}
		b.WriteString(formRow(label, 17, "["+f.inputs[idx].View()+"]"))
	}

	if f.submitting {
		b.WriteString("\n[Pagando...]\n")
	} else {
		b.WriteString("\n[Confirmar compra]\n")
	}
	if f.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(f.status))
		b.WriteString("\n")
	}
	b.WriteString(errorLines(f.errMsg))

	return strings.TrimRight(b.String(), "\n")
}

func cardTypeLabel(i int) string {
	if i <= 0 || i > len(models.CardTypes) {
		return "Selecciona una tarjeta"
	}
	return strings.ToUpper(models.CardTypes[i-1])
}
