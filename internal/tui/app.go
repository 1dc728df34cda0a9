package tui

import (
	"github.com/MKhiriev/go-travel-booking/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel drives the login flow. It owns the page registry, switches pages
// on NavigateTo, quits on ctrl+c or on a successful AuthResult and passes
// every other message to the active page. "v" on the menu toggles the
// build information window.
type RootModel struct {
	pages  map[string]tea.Model
	active tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	quitByUser bool
	session    models.Session
	registered bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case AuthResult:
		if msg.Err == nil {
			r.session = msg.Session
			r.registered = msg.Registered
			return r, tea.Quit
		}
	}

	if r.active == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return r, cmd
}

// handleGlobalKey reports whether the key was consumed by the router.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "v":
		if r.isMenuPage() {
			r.showBuildInfo = !r.showBuildInfo
			return true, nil
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return true, nil
		}
	}
	// the build info window swallows everything else
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.active = page
	r.showBuildInfo = false

	if nav.Payload == nil {
		return r, page.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.active == nil:
		return renderPage(models.AppName, "", "")
	default:
		return r.active.View()
	}
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.active.(*MenuModel)
	return ok
}
