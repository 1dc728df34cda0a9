package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/tui"
	"github.com/MKhiriev/go-travel-booking/models"
)

type App struct {
	auth   service.AuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}

	return &App{
		auth:   services.AuthService,
		ui:     ui,
		logger: log,
	}, nil
}

// Run loops login -> main page until the user quits. Quitting from the
// login menu is a normal exit.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit from login flow")
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().
			Str("func", "App.Run").
			Str("username", session.Username).
			Msg("user logged out")
	}
}

// session returns the session left by a previous run or asks the user to
// log in. A corrupted stored session is discarded.
func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Debug().
			Str("func", "App.session").
			Str("username", session.Username).
			Msg("session restored")
		return session, nil
	case errors.Is(err, service.ErrCorruptedSession):
		a.logger.Warn().Err(err).Str("func", "App.session").Msg("discarding corrupted session")
		if err = a.auth.Logout(ctx); err != nil {
			return models.Session{}, fmt.Errorf("clear corrupted session: %w", err)
		}
	case !errors.Is(err, service.ErrNoActiveSession):
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}
