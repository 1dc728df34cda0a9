package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

// Demo account that always logs in and is created on first use.
const (
	BootstrapUsername = "testuser"
	BootstrapPassword = "Test1234!"
)

// defaultSessionName is used when the session user has no stored record.
const defaultSessionName = "Usuario"

func bootstrapUser() models.User {
	return models.User{
		Username: BootstrapUsername,
		Password: BootstrapPassword,
		Name:     "Usuario",
		LastName: "de Prueba",
		Email:    "test@example.com",
	}
}

type authService struct {
	users     *store.Collection[models.User]
	sessions  SessionService
	validator validators.Validator
	images    ImageEncoder
	now       func() time.Time
	logger    *logger.Logger
}

func NewAuthService(
	users *store.Collection[models.User],
	sessions SessionService,
	validator validators.Validator,
	images ImageEncoder,
	now func() time.Time,
	log *logger.Logger,
) AuthService {
	return &authService{
		users:     users,
		sessions:  sessions,
		validator: validator,
		images:    images,
		now:       now,
		logger:    log,
	}
}

func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.Session, error) {
	res, err := a.validator.Validate(ctx, form)
	if err != nil {
		return models.Session{}, fmt.Errorf("validate login: %w", err)
	}
	if !res.IsValid {
		return models.Session{}, &ValidationError{Errors: res.Errors}
	}

	username := strings.TrimSpace(form.Username)

	users, err := a.users.LoadAll(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.Login").Msg("failed to load users")
		return models.Session{}, err
	}

	if !hasCredentials(users, username, form.Password) {
		if username != BootstrapUsername || form.Password != BootstrapPassword {
			a.logger.Info().
				Str("func", "authService.Login").
				Str("username", username).
				Msg("rejected login")
			return models.Session{}, ErrInvalidCredentials
		}
		if users, err = a.ensureBootstrapUser(ctx, users); err != nil {
			return models.Session{}, err
		}
	}

	identity := models.Session{Username: username, Name: defaultSessionName}
	if u, ok := findUser(users, username); ok {
		identity = u.Identity()
	}

	return a.sessions.Create(ctx, identity, form.RememberMe)
}

// ensureBootstrapUser stores the demo account unless a user with its
// username already exists.
func (a *authService) ensureBootstrapUser(ctx context.Context, users []models.User) ([]models.User, error) {
	if _, ok := findUser(users, BootstrapUsername); ok {
		return users, nil
	}

	u := bootstrapUser()
	if err := a.users.AppendAndSave(ctx, u); err != nil {
		a.logger.Err(err).Str("func", "authService.ensureBootstrapUser").Msg("failed to store demo account")
		return nil, err
	}
	a.logger.Info().Str("func", "authService.ensureBootstrapUser").Msg("demo account created")

	return append(users, u), nil
}

func (a *authService) Register(ctx context.Context, form models.RegistrationForm) (models.Session, error) {
	if !form.AcceptedPrivacy {
		return models.Session{}, ErrPrivacyNotAccepted
	}

	res, err := a.validator.Validate(ctx, form)
	if err != nil {
		return models.Session{}, fmt.Errorf("validate registration: %w", err)
	}
	if !res.IsValid {
		return models.Session{}, &ValidationError{Errors: res.Errors}
	}

	f := form.Normalized()
	user := models.User{
		Username:         f.Username,
		Password:         f.Password,
		Name:             f.Name,
		LastName:         f.LastName,
		Email:            f.Email,
		BirthDate:        f.BirthDate,
		RegistrationDate: a.now().UTC(),
	}

	if f.ProfilePicture != nil {
		dataURL, err := a.images.Encode(ctx, *f.ProfilePicture)
		if err != nil {
			a.logger.Err(err).
				Str("func", "authService.Register").
				Str("file", f.ProfilePicture.FileName).
				Msg("failed to encode profile picture")
			if !errors.Is(err, ErrImageEncoding) {
				err = fmt.Errorf("%w: %w", ErrImageEncoding, err)
			}
			return models.Session{}, err
		}
		user.ProfilePicture = &dataURL
	}

	if err = a.users.AppendAndSave(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "authService.Register").Msg("failed to store user")
		return models.Session{}, err
	}

	a.logger.Info().
		Str("func", "authService.Register").
		Str("username", user.Username).
		Msg("user registered")

	return a.sessions.Create(ctx, user.Identity(), false)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info().Str("func", "authService.Logout").Msg("session cleared")
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, tier, err := a.sessions.Current(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.logger.Debug().
		Str("func", "authService.RestoreSession").
		Str("username", session.Username).
		Stringer("tier", tier).
		Msg("session restored")

	return session, nil
}

func hasCredentials(users []models.User, username, password string) bool {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

func findUser(users []models.User, username string) (models.User, bool) {
	for _, u := range users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// userDirectory answers username lookups from the users collection.
type userDirectory struct {
	users *store.Collection[models.User]
}

func (d userDirectory) UsernameExists(ctx context.Context, username string) (bool, error) {
	users, err := d.users.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	_, ok := findUser(users, username)
	return ok, nil
}
