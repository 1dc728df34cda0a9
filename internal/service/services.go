package service

import (
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
)

type ClientServices struct {
	SessionService  SessionService
	AuthService     AuthService
	CatalogService  CatalogService
	PurchaseService PurchaseService
	TipService      TipService
}

func NewClientServices(storages *store.ClientStorages, log *logger.Logger) *ClientServices {
	return newClientServices(storages, utils.NewUUIDGenerator(), NewDataURLEncoder(), time.Now, log)
}

func newClientServices(
	storages *store.ClientStorages,
	ids IDGenerator,
	images ImageEncoder,
	now func() time.Time,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewFormValidator(userDirectory{users: storages.Users}, now)
	sessions := NewSessionService(storages, now, log)
	catalog := NewCatalogService(storages.Durable, log)

	return &ClientServices{
		SessionService:  sessions,
		AuthService:     NewAuthService(storages.Users, sessions, validator, images, now, log),
		CatalogService:  catalog,
		PurchaseService: NewPurchaseService(storages.Purchases, sessions, catalog, validator, ids, now, log),
		TipService:      NewTipService(storages.Tips, sessions, validator, ids, now, log),
	}
}
