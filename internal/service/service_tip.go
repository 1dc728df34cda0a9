package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

// AnonymousAuthor signs tips posted without a session.
const AnonymousAuthor = "Usuario Anónimo"

// TipsBoardSize is how many tips the board shows.
const TipsBoardSize = 3

// DefaultTipTitles fill the board while no tip has been posted.
var DefaultTipTitles = []string{
	"Transporte económico entre ciudades",
	"Cómo mantener la salud en los viajes",
	"Evitar robos en rutas concurridas",
	"Elementos esenciales en la mochila",
}

// Texts of the tips board.
const (
	MsgTipAdded      = "¡Consejo añadido exitosamente!"
	MsgSampleTipInfo = "Este es un consejo de ejemplo. ¡Añade tus propios consejos usando el formulario!"
)

type tipService struct {
	tips      *store.Collection[models.Tip]
	sessions  SessionService
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

func NewTipService(
	tips *store.Collection[models.Tip],
	sessions SessionService,
	validator validators.Validator,
	ids IDGenerator,
	now func() time.Time,
	log *logger.Logger,
) TipService {
	return &tipService{
		tips:      tips,
		sessions:  sessions,
		validator: validator,
		ids:       ids,
		now:       now,
		logger:    log,
	}
}

func (t *tipService) Submit(ctx context.Context, form models.TipForm) (models.Tip, error) {
	res, err := t.validator.Validate(ctx, form)
	if err != nil {
		return models.Tip{}, fmt.Errorf("validate tip: %w", err)
	}
	if !res.IsValid {
		return models.Tip{}, &ValidationError{Errors: res.Errors}
	}

	author := AnonymousAuthor
	session, _, err := t.sessions.Current(ctx)
	switch {
	case err == nil:
		author = session.Name
	case !errors.Is(err, ErrNoActiveSession):
		return models.Tip{}, err
	}

	f := form.Normalized()
	tip := models.Tip{
		ID:          models.RecordID(t.ids.Generate()),
		Title:       f.Title,
		Description: f.Description,
		Author:      author,
		Timestamp:   t.now().UTC(),
	}

	if err = t.tips.AppendAndSave(ctx, tip); err != nil {
		t.logger.Err(err).Str("func", "tipService.Submit").Msg("failed to store tip")
		return models.Tip{}, err
	}

	return tip, nil
}

func (t *tipService) Recent(ctx context.Context, n int) ([]models.Tip, error) {
	all, err := t.tips.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []models.Tip{}, nil
	}

	start := max(len(all)-n, 0)
	out := make([]models.Tip, 0, len(all)-start)
	for i := len(all) - 1; i >= start; i-- {
		out = append(out, all[i])
	}

	return out, nil
}

// TipDetails is the text shown when a tip on the board is opened.
func TipDetails(tip models.Tip) string {
	return fmt.Sprintf("Título: %s\nDescripción: %s\nAutor: %s\nFecha: %s",
		tip.Title, tip.Description, tip.Author, tip.Timestamp.Local().Format("2/1/2006"))
}
