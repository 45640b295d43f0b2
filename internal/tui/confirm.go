package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmMessage follows the same three-way logic as the row labels.
func confirmMessage(row coinRow) string {
	return fmt.Sprintf("%s: %s?", row.label, describeCoin(row.coin))
}

func (m collectionModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		row := m.confirmRow
		m.confirmOpen = false
		m.busy = true
		return m, m.cmdRemoveCoin(row.coin.ID)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirmOpen = false
	}
	return m, nil
}

func (m collectionModel) viewConfirm() string {
	return renderPage("CONFIRM REMOVAL", confirmMessage(m.confirmRow), "y: confirm │ n: cancel")
}
