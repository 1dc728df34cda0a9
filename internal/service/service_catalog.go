package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/models"
)

type catalogService struct {
	packages []models.Package
	durable  store.KeyValueStore
	logger   *logger.Logger
}

// NewCatalogService serves the fixed catalog. The selected package is kept
// in the durable tier.
func NewCatalogService(durable store.KeyValueStore, log *logger.Logger) CatalogService {
	return &catalogService{packages: models.Catalog(), durable: durable, logger: log}
}

func (c *catalogService) List() []models.Package {
	out := make([]models.Package, len(c.packages))
	copy(out, c.packages)
	return out
}

func (c *catalogService) Get(id int) (models.Package, error) {
	for _, p := range c.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Package{}, fmt.Errorf("%w: %d", ErrPackageNotFound, id)
}

func (c *catalogService) Select(ctx context.Context, id int) (models.Package, error) {
	p, err := c.Get(id)
	if err != nil {
		return models.Package{}, err
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return models.Package{}, fmt.Errorf("encode package: %w", err)
	}
	if err = c.durable.Set(ctx, store.KeySelectedPackage, string(raw)); err != nil {
		c.logger.Err(err).
			Str("func", "catalogService.Select").
			Int("package_id", id).
			Msg("failed to store selected package")
		return models.Package{}, err
	}

	return p, nil
}

func (c *catalogService) Selected(ctx context.Context) (models.Package, error) {
	raw, err := c.durable.Get(ctx, store.KeySelectedPackage)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Package{}, ErrNoSelectedPackage
	}
	if err != nil {
		return models.Package{}, err
	}

	var p models.Package
	if err = json.Unmarshal([]byte(raw), &p); err != nil {
		c.logger.Err(err).Str("func", "catalogService.Selected").Msg("stored package is not valid JSON")
		return models.Package{}, fmt.Errorf("%w: %v", ErrNoSelectedPackage, err)
	}

	return p, nil
}
