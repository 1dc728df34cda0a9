// Package tui is the terminal front end of the booking client: the login
// flow (menu, login, registration) and the main page with the package
// carousel, checkout and the tips board.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/carousel"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("el usuario salió del programa")

type TUI struct {
	services         *service.ClientServices
	buildInfo        models.AppBuildInfo
	carouselInterval time.Duration
	logger           *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, carouselInterval time.Duration, log *logger.Logger) *TUI {
	if carouselInterval <= 0 {
		carouselInterval = carousel.DefaultInterval
	}
	return &TUI{
		services:         services,
		buildInfo:        buildInfo,
		carouselInterval: carouselInterval,
		logger:           log,
	}
}

// LoginFlow runs the menu until the user logs in or registers and returns
// the opened session. ErrUserQuit is returned when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().
		Str("func", "TUI.LoginFlow").
		Str("username", result.session.Username).
		Bool("registered", result.registered).
		Msg("login flow finished")

	return result.session, nil
}

// MainLoop runs the main page for session. It reports logout=true when the
// user confirmed a logout and false when the program was simply closed.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model, err := newMainLoopModel(ctx, t.services, session, t.carouselInterval)
	if err != nil {
		return false, fmt.Errorf("build main page: %w", err)
	}

	model.carousel.Start(ctx)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	model.carousel.Stop()
	close(model.rotations)

	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
