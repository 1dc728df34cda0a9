// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicación: ")
	b.WriteString(models.AppName)
	b.WriteString("\n")
	b.WriteString(formRow("Versión", 8, info.BuildVersion()))
	b.WriteString(formRow("Fecha", 8, info.BuildDate()))
	b.WriteString(formRow("Commit", 8, info.BuildCommit()))

	return renderPage("ACERCA DE", strings.TrimRight(b.String(), "\n"), "esc: volver")
}
