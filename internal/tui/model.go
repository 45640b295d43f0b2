package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rafail-Drakakis/Coins-collection/internal/adapter"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// collectionModel is the single screen of the client: both panes, the
// add form and the removal confirmation overlay.
//
// While a mutation is in flight the model is marked busy and ignores
// further mutation keys, so two requests are never racing each other.
type collectionModel struct {
	ctx    context.Context
	client adapter.CoinClient

	view collectionView
	pane pane
	idx  int

	loading bool
	busy    bool
	status  string

	formOpen bool
	inputs   []textinput.Model
	focus    int

	confirmOpen bool
	confirmRow  coinRow
}

func newCollectionModel(ctx context.Context, client adapter.CoinClient) collectionModel {
	return collectionModel{
		ctx:     ctx,
		client:  client,
		loading: true,
	}
}

func (m collectionModel) Init() tea.Cmd {
	return m.cmdLoadCoins()
}

func (m collectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coinsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = statusForError(msg.err)
			return m, nil
		}
		m.view = buildCollectionView(msg.coins)
		m.clampCursor()
		return m, nil

	case coinAddedMsg:
		m.busy = false
		m.resetForm()
		if msg.err != nil {
			m.status = statusForError(msg.err)
		} else {
			m.status = statusMessage(msg.status)
		}
		// resync regardless of outcome
		m.loading = true
		return m, m.cmdLoadCoins()

	case coinDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = statusForError(msg.err)
		} else {
			m.status = statusMessage(msg.status)
		}
		m.loading = true
		return m, m.cmdLoadCoins()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			return m.updateFormInputs(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) && !m.formOpen {
		return m, tea.Quit
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.formOpen {
		return m.updateForm(keyMsg)
	}
	if m.confirmOpen {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.activeRows())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.pane = (m.pane + 1) % 2
		m.clampCursor()
	case key.Matches(keyMsg, keys.add):
		if m.busy {
			return m, nil
		}
		m.openForm()
	case key.Matches(keyMsg, keys.remove):
		if m.busy {
			return m, nil
		}
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		m.confirmOpen = true
		m.confirmRow = row
	case key.Matches(keyMsg, keys.copy):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(describeCoin(row.coin)); err != nil {
			m.status = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "📋 Copied."
	case key.Matches(keyMsg, keys.reload):
		if m.busy {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadCoins()
	}

	return m, nil
}

func (m *collectionModel) activeRows() []coinRow {
	if m.pane == paneDuplicate {
		return m.view.duplicate
	}
	return m.view.unique
}

func (m *collectionModel) currentRow() (coinRow, bool) {
	rows := m.activeRows()
	if m.idx < 0 || m.idx >= len(rows) {
		return coinRow{}, false
	}
	return rows[m.idx], true
}

func (m *collectionModel) clampCursor() {
	if limit := len(m.activeRows()) - 1; m.idx > limit {
		m.idx = limit
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m collectionModel) cmdLoadCoins() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		coins, err := client.List(ctx)
		return coinsLoadedMsg{coins: coins, err: err}
	}
}

func (m collectionModel) cmdAddCoin(country, denomination, year string) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		status, err := client.Add(ctx, country, denomination, year)
		return coinAddedMsg{status: status, err: err}
	}
}

func (m collectionModel) cmdRemoveCoin(id int64) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		status, err := client.Remove(ctx, id)
		return coinDeletedMsg{status: status, err: err}
	}
}

func statusMessage(status string) string {
	switch status {
	case models.StatusAdded:
		return "✅ Coin added."
	case models.StatusIncremented:
		return "➕ Copy count increased."
	case models.StatusDeleted:
		return "🗑️ Coin removed."
	case models.StatusDecremented:
		return "➖ One copy removed."
	}
	return status
}

// statusForError keeps the warning marker for failures the backend
// described in its {error} payload; transport failures are shown as
// plain text.
func statusForError(err error) string {
	var backendErr *adapter.BackendError
	if errors.As(err, &backendErr) {
		return "⚠️ " + backendErr.Message
	}
	return err.Error()
}
