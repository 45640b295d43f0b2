package client

import (
	"context"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/internal/tui"
)

type App struct {
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{ui: ui, logger: logger}, nil
}

// Run starts the collection screen and blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.logger.Info().Msg("starting client")

	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("client finished")
	return nil
}
