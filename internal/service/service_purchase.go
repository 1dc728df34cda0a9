package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

// PaymentErrorsHeader precedes the list of violated checkout rules.
const PaymentErrorsHeader = "Errores en el formulario:"

type purchaseService struct {
	purchases *store.Collection[models.Purchase]
	sessions  SessionService
	catalog   CatalogService
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

func NewPurchaseService(
	purchases *store.Collection[models.Purchase],
	sessions SessionService,
	catalog CatalogService,
	validator validators.Validator,
	ids IDGenerator,
	now func() time.Time,
	log *logger.Logger,
) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		sessions:  sessions,
		catalog:   catalog,
		validator: validator,
		ids:       ids,
		now:       now,
		logger:    log,
	}
}

func (p *purchaseService) Purchase(ctx context.Context, form models.PaymentForm) (models.Purchase, error) {
	loggedIn, err := p.sessions.IsLoggedIn(ctx)
	if err != nil {
		return models.Purchase{}, err
	}
	if !loggedIn {
		return models.Purchase{}, ErrNotLoggedIn
	}

	pkg, err := p.catalog.Selected(ctx)
	if err != nil {
		return models.Purchase{}, err
	}

	res, err := p.validator.Validate(ctx, form)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("validate payment: %w", err)
	}
	if !res.IsValid {
		return models.Purchase{}, &ValidationError{Header: PaymentErrorsHeader, Errors: res.Errors}
	}

	f := form.Normalized()
	purchase := models.Purchase{
		ID:      models.RecordID(p.ids.Generate()),
		Package: &pkg,
		Buyer: models.Buyer{
			Name:  f.FullName,
			Email: f.Email,
		},
		Payment: models.PaymentSnapshot{
			CardType:       f.CardType,
			LastFourDigits: lastFour(validators.CardDigits(f.CardNumber)),
		},
		PurchaseDate: p.now().UTC(),
		Status:       models.PurchaseStatusCompleted,
	}

	if err = p.purchases.AppendAndSave(ctx, purchase); err != nil {
		p.logger.Err(err).
			Str("func", "purchaseService.Purchase").
			Stringer("purchase_id", purchase.ID).
			Msg("failed to store purchase")
		return models.Purchase{}, err
	}

	p.logger.Info().
		Str("func", "purchaseService.Purchase").
		Stringer("purchase_id", purchase.ID).
		Int("package_id", pkg.ID).
		Msg("purchase completed")

	return purchase, nil
}

func (p *purchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	return p.purchases.LoadAll(ctx)
}

func lastFour(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// PurchaseSummary is the confirmation text shown after checkout.
func PurchaseSummary(p models.Purchase) string {
	name, price := "N/A", "N/A"
	if p.Package != nil {
		name, price = p.Package.Name, p.Package.Price
	}

	return fmt.Sprintf("¡Compra completada con éxito!\n\n"+
		"Pack: %s\n"+
		"Precio: %s\n"+
		"Comprador: %s\n\n"+
		"Recibirás un email de confirmación en: %s\n\n"+
		"¡Gracias por tu compra!", name, price, p.Buyer.Name, p.Buyer.Email)
}
