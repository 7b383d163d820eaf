package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

// TUI is the terminal front end: a single status screen showing the linked
// account and sync state, with keys to connect, force a sync, and sign out.
type TUI struct {
	services *service.ClientServices
	version  string
}

func New(services *service.ClientServices, version string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, version: version}, nil
}

func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.services, t.version)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(statusModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
