// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-todo-fetch/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: todo\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nDate: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc/f1: back")
}
