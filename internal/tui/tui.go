// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the dashboard until the professional quits. Without a restored
// session the login screen is shown first.
func (t *TUI) Run(ctx context.Context, authenticated bool) error {
	start := pageLogin
	if authenticated {
		start = pageDashboard
	}

	root := NewRootModel(t.pages(ctx), start, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(RootModel); ok {
		result.close()
	}
	return err
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:     NewLoginModel(ctx, t.services.AuthService),
		pageRegister:  NewRegisterModel(ctx, t.services.AuthService),
		pageDashboard: NewDashboardModel(ctx, t.services, t.logger),
	}
}
