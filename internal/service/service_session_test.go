package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/mock"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

func TestSessionService_CreatePersistent(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := NewSessionService(storages, fixedClock, logger.Nop())

	created, err := svc.Create(ctx, models.Session{Username: "alice", Name: "Alice"}, true)
	require.NoError(t, err)
	assert.True(t, created.RememberMe)
	assert.Equal(t, testNow, created.LoginTime)

	_, err = storages.Durable.Get(ctx, store.KeyCurrentSession)
	require.NoError(t, err)
	_, err = storages.Ephemeral.Get(ctx, store.KeyCurrentSession)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	current, tier, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DurableTier, tier)
	assert.Equal(t, created, current)
}

func TestSessionService_CreateClearsOtherTier(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := NewSessionService(storages, fixedClock, logger.Nop())

	_, err := svc.Create(ctx, models.Session{Username: "alice"}, true)
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Session{Username: "bob"}, false)
	require.NoError(t, err)

	_, err = svc.Get(ctx, models.DurableTier)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	current, tier, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EphemeralTier, tier)
	assert.Equal(t, "bob", current.Username)
	assert.False(t, current.RememberMe)
}

func TestSessionService_ClearIsIdempotent(t *testing.T) {
	for _, persistent := range []bool{true, false} {
		ctx := context.Background()
		svc := NewSessionService(newTestStorages(), fixedClock, logger.Nop())

		_, err := svc.Create(ctx, models.Session{Username: "alice"}, persistent)
		require.NoError(t, err)

		loggedIn, err := svc.IsLoggedIn(ctx)
		require.NoError(t, err)
		assert.True(t, loggedIn)

		require.NoError(t, svc.Clear(ctx))
		require.NoError(t, svc.Clear(ctx))

		loggedIn, err = svc.IsLoggedIn(ctx)
		require.NoError(t, err)
		assert.False(t, loggedIn, "persistent=%v", persistent)
	}
}

func TestSessionService_CurrentWithoutSession(t *testing.T) {
	svc := NewSessionService(newTestStorages(), fixedClock, logger.Nop())

	_, _, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestSessionService_CorruptedSession(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	require.NoError(t, storages.Ephemeral.Set(ctx, store.KeyCurrentSession, "not json"))
	svc := NewSessionService(storages, fixedClock, logger.Nop())

	_, _, err := svc.Current(ctx)
	assert.ErrorIs(t, err, ErrCorruptedSession)

	_, err = svc.IsLoggedIn(ctx)
	assert.ErrorIs(t, err, ErrCorruptedSession)
}

func TestSessionService_GetUnknownTier(t *testing.T) {
	svc := NewSessionService(newTestStorages(), fixedClock, logger.Nop())

	_, err := svc.Get(context.Background(), models.StorageTier(42))
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestSessionService_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	durable := mock.NewMockKeyValueStore(ctrl)
	ephemeral := store.NewMemoryKeyValueStore()
	svc := NewSessionService(store.NewStorages(durable, ephemeral, nil), fixedClock, logger.Nop())

	t.Run("create cannot clear durable slot", func(t *testing.T) {
		durable.EXPECT().Remove(ctx, store.KeyCurrentSession).Return(store.ErrStoreUnavailable)

		_, err := svc.Create(ctx, models.Session{Username: "alice"}, false)
		require.ErrorIs(t, err, store.ErrStoreUnavailable)

		_, err = ephemeral.Get(ctx, store.KeyCurrentSession)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("clear still removes ephemeral", func(t *testing.T) {
		require.NoError(t, ephemeral.Set(ctx, store.KeyCurrentSession, `{"username":"bob"}`))
		durable.EXPECT().Remove(ctx, store.KeyCurrentSession).Return(errors.New("locked"))

		err := svc.Clear(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")

		_, err = ephemeral.Get(ctx, store.KeyCurrentSession)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("current propagates read error", func(t *testing.T) {
		durable.EXPECT().Get(ctx, store.KeyCurrentSession).Return("", store.ErrStoreUnavailable)

		_, _, err := svc.Current(ctx)
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})
}
