package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

type sessionService struct {
	storages *store.ClientStorages
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionService(storages *store.ClientStorages, now func() time.Time, log *logger.Logger) SessionService {
	return &sessionService{storages: storages, now: now, logger: log}
}

func (s *sessionService) Create(ctx context.Context, identity models.Session, persistent bool) (models.Session, error) {
	identity.LoginTime = s.now().UTC()
	identity.RememberMe = persistent

	target, other := models.EphemeralTier, models.DurableTier
	if persistent {
		target, other = models.DurableTier, models.EphemeralTier
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode session: %w", err)
	}

	if err = s.storages.Tier(other).Remove(ctx, store.KeyCurrentSession); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Create").
			Stringer("tier", other).
			Msg("failed to clear session slot of the other tier")
		return models.Session{}, fmt.Errorf("clear %s session: %w", other, err)
	}

	if err = s.storages.Tier(target).Set(ctx, store.KeyCurrentSession, string(raw)); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Create").
			Stringer("tier", target).
			Msg("failed to store session")
		return models.Session{}, fmt.Errorf("store %s session: %w", target, err)
	}

	s.logger.Info().
		Str("func", "sessionService.Create").
		Str("username", identity.Username).
		Stringer("tier", target).
		Msg("session created")

	return identity, nil
}

func (s *sessionService) Current(ctx context.Context) (models.Session, models.StorageTier, error) {
	for _, tier := range []models.StorageTier{models.DurableTier, models.EphemeralTier} {
		session, err := s.Get(ctx, tier)
		if errors.Is(err, ErrNoActiveSession) {
			continue
		}
		if err != nil {
			return models.Session{}, 0, err
		}
		return session, tier, nil
	}

	return models.Session{}, 0, ErrNoActiveSession
}

func (s *sessionService) Get(ctx context.Context, tier models.StorageTier) (models.Session, error) {
	if tier != models.DurableTier && tier != models.EphemeralTier {
		return models.Session{}, fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}

	raw, err := s.storages.Tier(tier).Get(ctx, store.KeyCurrentSession)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Session{}, ErrNoActiveSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read %s session: %w", tier, err)
	}

	var session models.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.Get").
			Stringer("tier", tier).
			Msg("stored session is not valid JSON")
		return models.Session{}, fmt.Errorf("%w: %v", ErrCorruptedSession, err)
	}

	return session, nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	var errs []error
	for _, tier := range []models.StorageTier{models.DurableTier, models.EphemeralTier} {
		if err := s.storages.Tier(tier).Remove(ctx, store.KeyCurrentSession); err != nil {
			s.logger.Err(err).
				Str("func", "sessionService.Clear").
				Stringer("tier", tier).
				Msg("failed to remove session")
			errs = append(errs, fmt.Errorf("clear %s session: %w", tier, err))
		}
	}

	return errors.Join(errs...)
}

func (s *sessionService) IsLoggedIn(ctx context.Context) (bool, error) {
	_, _, err := s.Current(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNoActiveSession):
		return false, nil
	default:
		return false, err
	}
}
