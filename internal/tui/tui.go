package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rafail-Drakakis/Coins-collection/internal/adapter"
	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
)

// TUI is the terminal front end of the coin collection. It talks to
// the backend exclusively through the injected [adapter.CoinClient].
type TUI struct {
	client adapter.CoinClient
	logger *logger.Logger
}

func New(client adapter.CoinClient, logger *logger.Logger) (*TUI, error) {
	return &TUI{client: client, logger: logger}, nil
}

// Run starts the interactive collection screen and blocks until the
// user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newCollectionModel(ctx, t.client)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
