package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

func TestNewClientStorages_FileDriver(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{
		Driver: config.DriverFile,
		DSN:    filepath.Join(t.TempDir(), "booking.json"),
	}}

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.Durable)
	require.NotNil(t, s.Ephemeral)
	assert.Same(t, s.Durable, s.Tier(models.DurableTier))
	assert.Same(t, s.Ephemeral, s.Tier(models.EphemeralTier))

	require.NoError(t, s.Users.AppendAndSave(ctx, models.User{Username: "alice"}))

	_, err = s.Durable.Get(ctx, KeyUsers)
	assert.NoError(t, err)
	_, err = s.Ephemeral.Get(ctx, KeyUsers)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{Driver: "mongodb", DSN: "x"}}

	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestClientStorages_CloseWithoutCloser(t *testing.T) {
	s := NewStorages(NewMemoryKeyValueStore(), NewMemoryKeyValueStore(), nil)
	assert.NoError(t, s.Close())
	assert.Equal(t, KeyPurchases, s.Purchases.Key())
	assert.Equal(t, KeyTips, s.Tips.Key())
}
