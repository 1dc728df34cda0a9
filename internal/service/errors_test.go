package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Errors: []string{"a", "b"}})

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "validation failed: a; b", err.Error())
	assert.Equal(t, "a\nb", UserMessage(err))

	withHeader := &ValidationError{Header: "H:", Errors: []string{"x"}}
	assert.Equal(t, "H:\n\nx", withHeader.Message())

	wrapped := fmt.Errorf("submit: %w", withHeader)
	assert.Equal(t, "H:\n\nx", UserMessage(wrapped))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "credentials", err: ErrInvalidCredentials, want: MsgInvalidCredentials},
		{name: "privacy", err: ErrPrivacyNotAccepted, want: MsgPrivacyNotAccepted},
		{name: "not logged in", err: ErrNotLoggedIn, want: MsgNotLoggedIn},
		{name: "no session", err: ErrNoActiveSession, want: MsgNoActiveSession},
		{name: "no package", err: ErrNoSelectedPackage, want: MsgNoSelectedPackage},
		{name: "image", err: fmt.Errorf("%w: boom", ErrImageEncoding), want: MsgImageEncoding},
		{name: "corrupted", err: fmt.Errorf("load: %w", store.ErrCorruptedCollection), want: MsgStorageFailure},
		{name: "unknown", err: errors.New("boom"), want: MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestDataURLEncoder(t *testing.T) {
	enc := NewDataURLEncoder()

	t.Run("encodes", func(t *testing.T) {
		got, err := enc.Encode(context.Background(), models.ProfileImage{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}})
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,/9g=", got)
	})

	t.Run("empty image", func(t *testing.T) {
		_, err := enc.Encode(context.Background(), models.ProfileImage{MIMEType: "image/png"})
		assert.ErrorIs(t, err, ErrImageEncoding)
	})
}
