// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/models"
)

// ClientStorages groups the two key-value tiers and the record collections
// the services work with. Users, purchases and tips always live in the
// durable tier.
type ClientStorages struct {
	Durable   KeyValueStore
	Ephemeral KeyValueStore

	Users     *Collection[models.User]
	Purchases *Collection[models.Purchase]
	Tips      *Collection[models.Tip]

	closer io.Closer
}

// NewClientStorages opens the durable backend selected by cfg.DB.Driver,
// runs migrations for SQL backends and attaches a fresh ephemeral tier.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	var (
		durable KeyValueStore
		closer  io.Closer
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewClientStorages").Msg("error migrating database")
			db.Close()
			return nil, fmt.Errorf("error migrating database: %w", classifyError(err))
		}
		durable = NewSQLKeyValueStore(db, log)
		closer = db
	case config.DriverFile:
		kv, err := NewFileKeyValueStore(cfg.DB.DSN)
		if err != nil {
			log.Err(err).Str("func", "NewClientStorages").Msg("error opening storage file")
			return nil, err
		}
		durable = kv
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	log.Info().
		Str("func", "NewClientStorages").
		Str("driver", cfg.DB.Driver).
		Msg("storage is ready")

	return NewStorages(durable, NewMemoryKeyValueStore(), closer), nil
}

// NewStorages assembles ClientStorages from already constructed tiers.
// closer may be nil.
func NewStorages(durable, ephemeral KeyValueStore, closer io.Closer) *ClientStorages {
	return &ClientStorages{
		Durable:   durable,
		Ephemeral: ephemeral,
		Users:     NewCollection[models.User](durable, KeyUsers),
		Purchases: NewCollection[models.Purchase](durable, KeyPurchases),
		Tips:      NewCollection[models.Tip](durable, KeyTips),
		closer:    closer,
	}
}

// Tier returns the store backing tier.
func (s *ClientStorages) Tier(tier models.StorageTier) KeyValueStore {
	if tier == models.EphemeralTier {
		return s.Ephemeral
	}
	return s.Durable
}

// Close releases the durable backend.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func connect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}
