package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-booking/internal/validators"
	"github.com/MKhiriev/go-travel-booking/models"
)

func tipForm(i int) models.TipForm {
	return models.TipForm{
		Title:       fmt.Sprintf("Consejo de viaje número %d", i),
		Description: strings.Repeat("Lleva siempre agua. ", 2),
	}
}

func TestTipService_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	for i := 1; i <= 4; i++ {
		_, err := svc.TipService.Submit(ctx, tipForm(i))
		require.NoError(t, err)
	}

	recent, err := svc.TipService.Recent(ctx, TipsBoardSize)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, tipForm(4).Title, recent[0].Title)
	assert.Equal(t, tipForm(3).Title, recent[1].Title)
	assert.Equal(t, tipForm(2).Title, recent[2].Title)

	all, err := svc.TipService.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := svc.TipService.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTipService_Author(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	tip, err := svc.TipService.Submit(ctx, tipForm(1))
	require.NoError(t, err)
	assert.Equal(t, AnonymousAuthor, tip.Author)
	assert.Equal(t, models.RecordID("id-1"), tip.ID)
	assert.Equal(t, testNow, tip.Timestamp)

	loginAsTestUser(t, svc, false)
	tip, err = svc.TipService.Submit(ctx, tipForm(2))
	require.NoError(t, err)
	assert.Equal(t, "Usuario", tip.Author)
}

func TestTipService_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	svc, storages := newTestServices(t)

	_, err := svc.TipService.Submit(ctx, models.TipForm{Title: "Corto", Description: "Breve"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.MsgTipTitleTooShort, validators.MsgTipDescriptionShort}, vErr.Errors)

	tips, err := storages.Tips.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tips)
}

func TestTipService_EmptyBoard(t *testing.T) {
	svc, _ := newTestServices(t)

	recent, err := svc.TipService.Recent(context.Background(), TipsBoardSize)
	require.NoError(t, err)
	assert.Empty(t, recent)
	assert.Len(t, DefaultTipTitles, 4)
}

func TestTipDetails(t *testing.T) {
	details := TipDetails(models.Tip{Title: "T", Description: "D", Author: "Ana", Timestamp: testNow})
	assert.Contains(t, details, "Título: T")
	assert.Contains(t, details, "Autor: Ana")
	assert.Contains(t, details, "Fecha: ")
}
