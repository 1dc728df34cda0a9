package tui

import (
	"github.com/MKhiriev/go-travel-booking/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of RootModel. When Payload is set it
// is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the login and registration pages.
// RootModel ends the login flow when Err is nil.
type AuthResult struct {
	Session    models.Session
	Registered bool
	Err        error
}

type rotatedMsg struct {
	index int
}

type tipsLoadedMsg struct {
	tips []models.Tip
	err  error
}

type tipSavedMsg struct {
	tip models.Tip
	err error
}

type packageSelectedMsg struct {
	pkg models.Package
	err error
}

type purchaseDoneMsg struct {
	purchase models.Purchase
	err      error
}

type purchasesLoadedMsg struct {
	purchases []models.Purchase
	err       error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
