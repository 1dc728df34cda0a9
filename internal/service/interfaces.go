package service

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

// SessionService owns the single "who is logged in" record.
//
// A session lives in exactly one storage tier: the durable tier when the
// user asked to be remembered, the ephemeral tier otherwise.
type SessionService interface {
	// Create stamps LoginTime and RememberMe on identity and stores it in the
	// durable tier when persistent is true, in the ephemeral tier otherwise.
	// The slot of the other tier is removed first.
	Create(ctx context.Context, identity models.Session, persistent bool) (models.Session, error)

	// Current returns the active session and the tier it was read from. The
	// durable tier is consulted first. Returns ErrNoActiveSession when
	// neither tier holds a session.
	Current(ctx context.Context) (models.Session, models.StorageTier, error)

	// Get reads the session from a single tier only.
	Get(ctx context.Context, tier models.StorageTier) (models.Session, error)

	// Clear removes the session from both tiers. Clearing twice is not an error.
	Clear(ctx context.Context) error

	// IsLoggedIn reports whether either tier holds a session.
	IsLoggedIn(ctx context.Context) (bool, error)
}

// AuthService implements the login, registration and logout workflows.
type AuthService interface {
	// Login checks the credentials against the registered users and opens a
	// session, persistent when form.RememberMe is set. Invalid input yields a
	// *ValidationError; unknown credentials yield ErrInvalidCredentials.
	Login(ctx context.Context, form models.LoginForm) (models.Session, error)

	// Register validates and stores a new account, then opens an ephemeral
	// session for it. The privacy policy must be accepted before anything
	// else is looked at.
	Register(ctx context.Context, form models.RegistrationForm) (models.Session, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// RestoreSession returns the session left by a previous run, if any.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// CatalogService exposes the fixed package catalog and the package the user
// picked for checkout.
type CatalogService interface {
	List() []models.Package
	Get(id int) (models.Package, error)
	Select(ctx context.Context, id int) (models.Package, error)
	Selected(ctx context.Context) (models.Package, error)
}

// PurchaseService turns a checkout form into a stored purchase record.
type PurchaseService interface {
	// Purchase requires an active session and a selected package, validates
	// the form and stores a record holding only the card type and the last
	// four card digits.
	Purchase(ctx context.Context, form models.PaymentForm) (models.Purchase, error)

	// List returns every stored purchase in insertion order.
	List(ctx context.Context) ([]models.Purchase, error)
}

// TipService manages the travel tips board.
type TipService interface {
	// Submit validates and appends a tip authored by the current session
	// user, or by AnonymousAuthor when nobody is logged in.
	Submit(ctx context.Context, form models.TipForm) (models.Tip, error)

	// Recent returns up to n tips, newest first.
	Recent(ctx context.Context, n int) ([]models.Tip, error)
}

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}
