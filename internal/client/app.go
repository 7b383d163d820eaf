// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

// Package client assembles the daybook client application: configuration,
// storage, transport adapters, services and the terminal UI.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/crypto"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/service"
	"github.com/akovalyov/daybook/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// NewSealer builds the refresh-token sealer from the configured local secret.
func NewSealer(cfg config.ClientApp) (crypto.Sealer, error) {
	sealer, err := crypto.NewSealer(cfg.SealKey)
	if err != nil {
		return nil, fmt.Errorf("create sealer: %w", err)
	}
	return sealer, nil
}

func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.Orchestrator.Close()

	// Привязанный аккаунт восстанавливается без участия пользователя:
	// достаточно refresh-токена в локальном хранилище.
	if a.services.Session.Connected(ctx) {
		a.logger.Info().Msg("session restored, pulling remote state")
		if err := a.services.Orchestrator.Connect(ctx); err != nil {
			// стартовая синхронизация не роняет приложение: локальные
			// данные уже на месте, статус покажет ошибку
			a.logger.Warn().Err(err).Msg("initial sync failed")
		}
	}

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui error: %w", err)
	}

	return nil
}
