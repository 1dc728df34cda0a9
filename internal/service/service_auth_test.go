package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

func validRegistrationForm() models.RegistrationForm {
	return models.RegistrationForm{
		Name:            "María",
		LastName:        "García López",
		Email:           "maria@example.com",
		ConfirmEmail:    "maria@example.com",
		BirthDate:       "1990-05-20",
		Username:        "mariag",
		Password:        "Abcde12!",
		AcceptedPrivacy: true,
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.Login(context.Background(), models.LoginForm{Username: "  "})
	require.ErrorIs(t, err, ErrValidationFailed)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{validators.MsgLoginFieldsRequired}, vErr.Errors)
}

func TestAuthService_Login_BootstrapAccount(t *testing.T) {
	ctx := context.Background()
	svc, storages := newTestServices(t)

	session := loginAsTestUser(t, svc, true)
	assert.Equal(t, BootstrapUsername, session.Username)
	assert.Equal(t, "Usuario", session.Name)
	assert.Equal(t, "de Prueba", session.LastName)
	assert.Equal(t, "test@example.com", session.Email)
	assert.True(t, session.RememberMe)

	_, tier, err := svc.SessionService.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DurableTier, tier)

	// second login must not duplicate the demo account
	loginAsTestUser(t, svc, false)
	users, err := storages.Users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, tier, err = svc.SessionService.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EphemeralTier, tier)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.Login(ctx, models.LoginForm{Username: BootstrapUsername, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, MsgInvalidCredentials, UserMessage(err))

	loggedIn, err := svc.SessionService.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestAuthService_Login_RegisteredUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.Register(ctx, validRegistrationForm())
	require.NoError(t, err)
	require.NoError(t, svc.AuthService.Logout(ctx))

	// username is trimmed, password is compared as typed
	session, err := svc.AuthService.Login(ctx, models.LoginForm{Username: " mariag ", Password: "Abcde12!"})
	require.NoError(t, err)
	assert.Equal(t, "María", session.Name)
	assert.Equal(t, "García López", session.LastName)

	_, err = svc.AuthService.Login(ctx, models.LoginForm{Username: "MARIAG", Password: "Abcde12!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_PrivacyCheckedFirst(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.Register(context.Background(), models.RegistrationForm{})
	assert.ErrorIs(t, err, ErrPrivacyNotAccepted)
	assert.Equal(t, MsgPrivacyNotAccepted, UserMessage(err))
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	svc, storages := newTestServices(t)

	form := validRegistrationForm()
	form.Name = "  María  "
	form.ProfilePicture = &models.ProfileImage{FileName: "me.png", MIMEType: "image/png", Data: []byte("png-bytes")}

	session, err := svc.AuthService.Register(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "María", session.Name)
	assert.False(t, session.RememberMe)

	_, tier, err := svc.SessionService.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EphemeralTier, tier)

	users, err := storages.Users.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	u := users[0]
	assert.Equal(t, "mariag", u.Username)
	assert.Equal(t, "Abcde12!", u.Password)
	assert.Equal(t, "1990-05-20", u.BirthDate)
	assert.Equal(t, testNow, u.RegistrationDate)
	require.NotNil(t, u.ProfilePicture)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("png-bytes")), *u.ProfilePicture)
	assert.Equal(t, u.ProfilePicture, session.ProfilePicture)
}

func TestAuthService_Register_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	svc, storages := newTestServices(t)

	form := validRegistrationForm()
	form.Username = "user1"
	form.Password = "Abcdef1!"

	_, err := svc.AuthService.Register(ctx, form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgPasswordDigits}, vErr.Errors)

	users, err := storages.Users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	form.Password = "Abcde12!"
	_, err = svc.AuthService.Register(ctx, form)
	require.NoError(t, err)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.Register(ctx, validRegistrationForm())
	require.NoError(t, err)

	_, err = svc.AuthService.Register(ctx, validRegistrationForm())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgUsernameTaken}, vErr.Errors)
}

func TestAuthService_Register_ImageEncodingFails(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := newClientServices(storages, &seqIDs{}, failingEncoder{}, fixedClock, logger.Nop())

	form := validRegistrationForm()
	form.ProfilePicture = &models.ProfileImage{FileName: "me.webp", MIMEType: "image/webp", Data: []byte("x")}

	_, err := svc.AuthService.Register(ctx, form)
	require.ErrorIs(t, err, ErrImageEncoding)

	users, err := storages.Users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	loggedIn, err := svc.SessionService.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

// ── Logout / Restore ─────────────────────────────────────────────────────────

func TestAuthService_LogoutAndRestore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	_, err := svc.AuthService.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	loginAsTestUser(t, svc, true)

	restored, err := svc.AuthService.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, BootstrapUsername, restored.Username)

	require.NoError(t, svc.AuthService.Logout(ctx))
	require.NoError(t, svc.AuthService.Logout(ctx))

	_, err = svc.AuthService.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
