// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testToday = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

type fakeUsers map[string]bool

func (f fakeUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	return f[username], nil
}

type failingUsers struct{}

func (failingUsers) UsernameExists(context.Context, string) (bool, error) {
	return false, errors.New("store down")
}

func validRegistration() models.RegistrationForm {
	return models.RegistrationForm{
		Name:         "María",
		LastName:     "García López",
		Email:        "maria@example.com",
		ConfirmEmail: "maria@example.com",
		BirthDate:    "1990-05-20",
		Username:     "mariag",
		Password:     "Abcde12!",
		ProfilePicture: &models.ProfileImage{
			FileName: "me.png",
			MIMEType: "image/png",
			Data:     []byte{0x89, 'P', 'N', 'G'},
		},
		AcceptedPrivacy: true,
	}
}

// ---------------------------------------------------------------------------
// TestValidateRegistration
// ---------------------------------------------------------------------------

func TestValidateRegistration_Valid(t *testing.T) {
	res, err := ValidateRegistration(context.Background(), validRegistration(), fakeUsers{"testuser": true}, testToday)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateRegistration_AggregationOrder(t *testing.T) {
	form := models.RegistrationForm{
		Name:           "Al",
		LastName:       "Ruiz",
		Email:          "bad",
		ConfirmEmail:   "other",
		BirthDate:      "2030-01-01",
		Username:       "abc",
		Password:       "ab",
		ProfilePicture: &models.ProfileImage{FileName: "me.gif", MIMEType: "image/gif"},
	}

	res, err := ValidateRegistration(context.Background(), form, fakeUsers{"abc": true}, testToday)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		MsgNameTooShort,
		MsgLastNameTwoWords,
		MsgEmailInvalid,
		MsgEmailMismatch,
		MsgBirthDateInFuture,
		MsgTooYoung,
		MsgUsernameTooShort,
		MsgUsernameTaken,
		MsgPasswordLength,
		MsgProfileImageFormat,
	}, res.Errors)
}

func TestValidateRegistration_SingleRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.RegistrationForm)
		want   []string
	}{
		{
			name:   "name trimmed before counting",
			mutate: func(f *models.RegistrationForm) { f.Name = "  Jo  " },
			want:   []string{MsgNameTooShort},
		},
		{
			name:   "short surname",
			mutate: func(f *models.RegistrationForm) { f.LastName = "García Li" },
			want:   []string{MsgLastNameWordTooShort},
		},
		{
			name:   "extra spaces between surnames",
			mutate: func(f *models.RegistrationForm) { f.LastName = "García    López" },
			want:   nil,
		},
		{
			name:   "confirmation differs in case",
			mutate: func(f *models.RegistrationForm) { f.ConfirmEmail = "Maria@example.com" },
			want:   []string{MsgEmailMismatch},
		},
		{
			name:   "birth date omitted",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "" },
			want:   nil,
		},
		{
			name:   "turns thirteen this year",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "2013-12-31" },
			want:   nil,
		},
		{
			name:   "twelve by year difference",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "2014-01-01" },
			want:   []string{MsgTooYoung},
		},
		{
			name:   "before 1900",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "1899-12-31" },
			want:   []string{MsgBirthDateInvalid},
		},
		{
			name:   "born today is not future",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "2026-06-15" },
			want:   []string{MsgTooYoung},
		},
		{
			name:   "unparseable birth date",
			mutate: func(f *models.RegistrationForm) { f.BirthDate = "20/05/1990" },
			want:   []string{MsgBirthDateInvalid},
		},
		{
			name:   "username already registered",
			mutate: func(f *models.RegistrationForm) { f.Username = "testuser" },
			want:   []string{MsgUsernameTaken},
		},
		{
			name:   "username match is case sensitive",
			mutate: func(f *models.RegistrationForm) { f.Username = "TestUser" },
			want:   nil,
		},
		{
			name:   "password one digit",
			mutate: func(f *models.RegistrationForm) { f.Password = "Abcdef1!" },
			want:   []string{MsgPasswordDigits},
		},
		{
			name:   "jpg alias accepted",
			mutate: func(f *models.RegistrationForm) { f.ProfilePicture.MIMEType = "image/jpg" },
			want:   nil,
		},
		{
			name:   "no picture",
			mutate: func(f *models.RegistrationForm) { f.ProfilePicture = nil },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			tt.mutate(&form)

			res, err := ValidateRegistration(context.Background(), form, fakeUsers{"testuser": true}, testToday)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want) == 0, res.IsValid)
			assert.Equal(t, tt.want, res.Errors)
		})
	}
}

func TestValidateRegistration_UserLookupFails(t *testing.T) {
	_, err := ValidateRegistration(context.Background(), validRegistration(), failingUsers{}, testToday)
	require.ErrorIs(t, err, ErrUserLookup)
	assert.Contains(t, err.Error(), "store down")
}

func TestValidateRegistration_NilLookup(t *testing.T) {
	res, err := ValidateRegistration(context.Background(), validRegistration(), nil, testToday)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}
