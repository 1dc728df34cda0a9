// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-travel-booking/internal/store"
)

// User-facing texts for non-validation failures.
const (
	MsgInvalidCredentials = "Usuario o contraseña incorrectos. Por favor, inténtalo de nuevo."
	MsgPrivacyNotAccepted = "Debes aceptar la política de privacidad para continuar."
	MsgNotLoggedIn        = "Debes iniciar sesión para realizar una compra."
	MsgNoActiveSession    = "Debes iniciar sesión para acceder a esta página."
	MsgNoSelectedPackage  = "No has seleccionado ningún pack. Elige uno en el carrusel."
	MsgImageEncoding      = "Error al procesar la imagen de perfil. Inténtalo de nuevo."
	MsgStorageFailure     = "No se pudieron guardar los datos. Inténtalo de nuevo más tarde."
	MsgUnexpected         = "Se ha producido un error inesperado."
)

// UserMessage translates a service error into the text shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message()
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrPrivacyNotAccepted):
		return MsgPrivacyNotAccepted
	case errors.Is(err, ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.Is(err, ErrNoActiveSession):
		return MsgNoActiveSession
	case errors.Is(err, ErrNoSelectedPackage), errors.Is(err, ErrPackageNotFound):
		return MsgNoSelectedPackage
	case errors.Is(err, ErrImageEncoding):
		return MsgImageEncoding
	case errors.Is(err, store.ErrStoreUnavailable),
		errors.Is(err, store.ErrStoreNotMigrated),
		errors.Is(err, store.ErrCorruptedCollection),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrExecutingQuery):
		return MsgStorageFailure
	}

	return MsgUnexpected
}
