package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	storages := store.NewStorages(store.NewMemoryKeyValueStore(), store.NewMemoryKeyValueStore(), nil)
	return service.NewClientServices(storages, logger.Nop())
}

func login(t *testing.T, svc *service.ClientServices) models.Session {
	t.Helper()
	s, err := svc.AuthService.Login(context.Background(), models.LoginForm{
		Username: service.BootstrapUsername,
		Password: service.BootstrapPassword,
	})
	require.NoError(t, err)
	return s
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKey(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

// exec runs cmd and returns its message, failing on a nil command.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
