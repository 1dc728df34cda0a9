package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/carousel"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgLogoutConfirm = "¿Estás seguro de que deseas cerrar sesión?"
	msgFormCleared   = "Formulario borrado correctamente."
	msgIDCopied      = "ID de compra copiado al portapapeles."
)

type mainView int

const (
	viewHome mainView = iota
	viewCheckout
	viewTipForm
	viewPurchases
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayError
	overlayInfo
	overlayLogout
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	carousel  *carousel.Carousel
	rotations chan int
	paused    bool

	view    mainView
	overlay overlayKind
	errMsg  string
	info    infoOverlayModel
	copyID  string
	status  string

	tips    []models.Tip
	tipIdx  int
	loading bool

	checkout  checkoutForm
	tipForm   tipForm
	purchases []models.Purchase

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session, interval time.Duration) (mainLoopModel, error) {
	rotations := make(chan int, 1)
	c, err := carousel.New(services.CatalogService.List(), interval, func(index int, _ models.Package) {
		// drop the update if the previous one is still pending
		select {
		case rotations <- index:
		default:
		}
	})
	if err != nil {
		return mainLoopModel{}, err
	}

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		carousel:  c,
		rotations: rotations,
		loading:   true,
	}, nil
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadTips(), waitRotation(m.rotations))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rotatedMsg:
		return m, waitRotation(m.rotations)
	case tipsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.tips = msg.tips
		if m.tipIdx >= m.boardLen() {
			m.tipIdx = 0
		}
		return m, nil
	case packageSelectedMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.checkout = newCheckoutForm(msg.pkg)
		m.view = viewCheckout
		m.status = ""
		return m, nil
	case purchaseDoneMsg:
		m.checkout.submitting = false
		if msg.err != nil {
			m.checkout.status = ""
			m.checkout.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.checkout = m.checkout.clear()
		m.view = viewHome
		m.overlay = overlayInfo
		m.info = infoOverlayModel{
			title:   "Compra",
			message: service.PurchaseSummary(msg.purchase) + "\n\nID: " + msg.purchase.ID.String(),
			hotKeys: "c: copiar ID",
		}
		m.copyID = msg.purchase.ID.String()
		return m, nil
	case tipSavedMsg:
		m.tipForm.saving = false
		if msg.err != nil {
			m.tipForm.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.view = viewHome
		m.status = service.MsgTipAdded
		m.tipIdx = 0
		m.loading = true
		return m, m.cmdLoadTips()
	case purchasesLoadedMsg:
		if msg.err != nil {
			m.view = viewHome
			return m.showError(msg.err), nil
		}
		m.purchases = msg.purchases
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay = overlayError
			m.errMsg = "No se pudo copiar al portapapeles: " + msg.err.Error()
			return m, nil
		}
		m.status = msgIDCopied
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayError:
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = overlayNone
			m.errMsg = ""
		}
		return m, nil
	case overlayInfo:
		switch {
		case key.Matches(keyMsg, keys.copy) && m.copyID != "":
			return m, cmdCopy(m.copyID)
		case key.Matches(keyMsg, keys.enter, keys.esc):
			m.overlay = overlayNone
			m.copyID = ""
		}
		return m, nil
	case overlayLogout:
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.overlay = overlayNone
			return m, m.cmdLogout()
		case key.Matches(keyMsg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch m.view {
	case viewCheckout:
		return m.updateCheckout(keyMsg)
	case viewTipForm:
		return m.updateTipForm(keyMsg)
	case viewPurchases:
		if key.Matches(keyMsg, keys.esc, keys.history) {
			m.view = viewHome
		}
		return m, nil
	}

	return m.updateHome(keyMsg)
}

func (m mainLoopModel) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.left):
		m.carousel.Prev()
	case key.Matches(keyMsg, keys.right):
		m.carousel.Next()
	case key.Matches(keyMsg, keys.pause):
		if m.paused {
			m.carousel.Start(m.ctx)
		} else {
			m.carousel.Stop()
		}
		m.paused = !m.paused
	case key.Matches(keyMsg, keys.up):
		if m.tipIdx > 0 {
			m.tipIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.tipIdx < m.boardLen()-1 {
			m.tipIdx++
		}
	case key.Matches(keyMsg, keys.openTip):
		return m.openTip(), nil
	case key.Matches(keyMsg, keys.buy):
		return m, m.cmdSelect(m.carousel.Current().ID)
	case key.Matches(keyMsg, keys.newTip):
		m.tipForm = newTipForm()
		m.view = viewTipForm
		m.status = ""
	case key.Matches(keyMsg, keys.history):
		m.view = viewPurchases
		m.purchases = nil
		return m, m.cmdLoadPurchases()
	case key.Matches(keyMsg, keys.logout):
		m.overlay = overlayLogout
	}
	return m, nil
}

func (m mainLoopModel) updateCheckout(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.view = viewHome
		return m, nil
	case "tab", "down":
		m.checkout = m.checkout.setFocus(m.checkout.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.checkout = m.checkout.setFocus(m.checkout.focus - 1)
		return m, nil
	case "ctrl+r":
		m.checkout = m.checkout.clear()
		m.checkout.status = msgFormCleared
		return m, nil
	case "left", "right":
		if m.checkout.onCardType() {
			step := 1
			if keyMsg.String() == "left" {
				step = -1
			}
			m.checkout = m.checkout.cycleCardType(step)
			return m, nil
		}
	case "enter":
		if m.checkout.submitting {
			return m, nil
		}
		m.checkout.submitting = true
		m.checkout.errMsg = ""
		m.checkout.status = ""
		return m, m.cmdPurchase(m.checkout.form())
	}

	var cmd tea.Cmd
	m.checkout, cmd = m.checkout.updateInput(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateTipForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.view = viewHome
		return m, nil
	case "tab", "shift+tab":
		m.tipForm = m.tipForm.toggleFocus()
		return m, nil
	case "ctrl+s":
		if m.tipForm.saving {
			return m, nil
		}
		m.tipForm.saving = true
		m.tipForm.errMsg = ""
		return m, m.cmdSubmitTip(m.tipForm.form())
	case "enter":
		if m.tipForm.focus == 0 {
			m.tipForm = m.tipForm.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tipForm, cmd = m.tipForm.updateInput(keyMsg)
	return m, cmd
}

// updateFocused forwards non-key messages such as cursor blinks to the
// focused form.
func (m mainLoopModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewCheckout:
		m.checkout, cmd = m.checkout.updateInput(msg)
	case viewTipForm:
		m.tipForm, cmd = m.tipForm.updateInput(msg)
	}
	return m, cmd
}

func (m mainLoopModel) View() string {
	var body, title, hotKeys string

	switch m.view {
	case viewCheckout:
		title = "FINALIZAR COMPRA"
		body = m.checkout.View()
		hotKeys = "esc: volver │ tab: siguiente campo │ ←/→: tipo de tarjeta │ ctrl+r: borrar │ enter: pagar"
	case viewTipForm:
		title = "NUEVO CONSEJO"
		body = m.tipForm.View()
		hotKeys = "esc: volver │ tab: cambiar campo │ ctrl+s: publicar"
	case viewPurchases:
		title = "MIS COMPRAS"
		body = m.renderPurchases()
		hotKeys = "esc: volver"
	default:
		title = strings.ToUpper(models.AppName)
		body = m.renderHome()
		hotKeys = "←/→: packs │ espacio: pausar │ b: comprar │ ↑/↓ enter: consejos │ t: nuevo consejo │ h: compras │ l: cerrar sesión │ q: salir"
	}

	page := renderPage(title, body, hotKeys)

	switch m.overlay {
	case overlayError:
		return page + "\n\n" + errorOverlayModel{message: m.errMsg}.View()
	case overlayInfo:
		return page + "\n\n" + m.info.View()
	case overlayLogout:
		return page + "\n\n" + confirmModel{message: msgLogoutConfirm}.View()
	}
	return page
}

func (m mainLoopModel) renderHome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(greeting(m.session)))
	b.WriteString("\n\n")

	pkg := m.carousel.Current()
	state := "auto"
	if m.paused {
		state = "pausado"
	}
	b.WriteString(fmt.Sprintf("Pack %d/%d (%s)\n", m.carousel.Index()+1, m.carousel.Len(), state))

	var card strings.Builder
	card.WriteString(titleStyle.Render(pkg.Name))
	card.WriteString("\n")
	card.WriteString(pkg.Description)
	card.WriteString("\n\n")
	card.WriteString(fitText(pkg.LongDescription, 220))
	card.WriteString("\n\n")
	card.WriteString(priceStyle.Render(pkg.Price))
	b.WriteString(cardStyle.Render(card.String()))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Consejos de viaje"))
	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString("Cargando...\n")
	case len(m.tips) == 0:
		for i, t := range service.DefaultTipTitles {
			b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor(i == m.tipIdx), i+1, fitText(t, 50)))
		}
	default:
		for i, t := range m.tips {
			b.WriteString(fmt.Sprintf("%s %d. %s │ %s\n", cursor(i == m.tipIdx), i+1, fitText(t.Title, 40), t.Author))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) renderPurchases() string {
	if len(m.purchases) == 0 {
		return "Todavía no hay compras."
	}

	var b strings.Builder
	for _, p := range m.purchases {
		name := "N/A"
		if p.Package != nil {
			name = p.Package.Name
		}
		b.WriteString(fmt.Sprintf("%s │ %s │ %s ****%s │ %s\n",
			p.PurchaseDate.Local().Format("2/1/2006"),
			fitText(name, 28),
			strings.ToUpper(p.Payment.CardType),
			p.Payment.LastFourDigits,
			p.Buyer.Email,
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) openTip() mainLoopModel {
	if len(m.tips) == 0 {
		if m.tipIdx >= len(service.DefaultTipTitles) {
			return m
		}
		m.info = infoOverlayModel{title: service.DefaultTipTitles[m.tipIdx], message: service.MsgSampleTipInfo}
		m.overlay = overlayInfo
		return m
	}
	if m.tipIdx >= len(m.tips) {
		return m
	}
	m.info = infoOverlayModel{title: "Consejo", message: service.TipDetails(m.tips[m.tipIdx])}
	m.overlay = overlayInfo
	return m
}

func (m mainLoopModel) boardLen() int {
	if len(m.tips) == 0 {
		return len(service.DefaultTipTitles)
	}
	return len(m.tips)
}

func (m mainLoopModel) showError(err error) mainLoopModel {
	m.overlay = overlayError
	m.errMsg = service.UserMessage(err)
	return m
}

func greeting(s models.Session) string {
	name := s.Name
	if name == "" {
		name = s.Username
	}
	return "¡Hola, " + name + "!"
}

func waitRotation(ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		idx, ok := <-ch
		if !ok {
			return nil
		}
		return rotatedMsg{index: idx}
	}
}

func (m mainLoopModel) cmdLoadTips() tea.Cmd {
	ctx := m.ctx
	tips := m.services.TipService
	return func() tea.Msg {
		items, err := tips.Recent(ctx, service.TipsBoardSize)
		return tipsLoadedMsg{tips: items, err: err}
	}
}

func (m mainLoopModel) cmdSelect(id int) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService
	return func() tea.Msg {
		pkg, err := catalog.Select(ctx, id)
		return packageSelectedMsg{pkg: pkg, err: err}
	}
}

func (m mainLoopModel) cmdPurchase(form models.PaymentForm) tea.Cmd {
	ctx := m.ctx
	purchases := m.services.PurchaseService
	return func() tea.Msg {
		p, err := purchases.Purchase(ctx, form)
		return purchaseDoneMsg{purchase: p, err: err}
	}
}

func (m mainLoopModel) cmdLoadPurchases() tea.Cmd {
	ctx := m.ctx
	purchases := m.services.PurchaseService
	return func() tea.Msg {
		items, err := purchases.List(ctx)
		return purchasesLoadedMsg{purchases: items, err: err}
	}
}

func (m mainLoopModel) cmdSubmitTip(form models.TipForm) tea.Cmd {
	ctx := m.ctx
	tips := m.services.TipService
	return func() tea.Msg {
		tip, err := tips.Submit(ctx, form)
		return tipSavedMsg{tip: tip, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
