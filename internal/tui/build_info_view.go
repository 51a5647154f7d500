// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/cuide-me/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	data := fmt.Sprintf(
		"Aplicativo: Cuide.me - painel profissional\nVersão:     %s\nData:       %s\nCommit:     %s",
		info.Version, info.Date, info.Commit,
	)
	return renderPage("SOBRE O PROGRAMA", data, "esc: voltar")
}
