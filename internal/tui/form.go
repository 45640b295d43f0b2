package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldCountry = iota
	formFieldDenomination
	formFieldYear
	formFieldCount
)

func (m *collectionModel) openForm() {
	country := textinput.New()
	country.Placeholder = "Country"
	country.Width = 30
	country.Focus()

	denomination := textinput.New()
	denomination.Placeholder = "Denomination"
	denomination.Width = 30

	year := textinput.New()
	year.Placeholder = "Year"
	year.Width = 30

	m.inputs = []textinput.Model{country, denomination, year}
	m.focus = formFieldCountry
	m.formOpen = true
}

func (m *collectionModel) resetForm() {
	m.formOpen = false
	m.inputs = nil
	m.focus = 0
}

func (m *collectionModel) focusField(field int) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}

func (m collectionModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.resetForm()
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.focusField((m.focus + 1) % formFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusField((m.focus - 1 + formFieldCount) % formFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.focus < formFieldYear {
			m.focusField(m.focus + 1)
			return m, nil
		}
		if m.busy {
			return m, nil
		}

		// the backend owns validation; values travel as typed
		country := strings.TrimSpace(m.inputs[formFieldCountry].Value())
		denomination := strings.TrimSpace(m.inputs[formFieldDenomination].Value())
		year := strings.TrimSpace(m.inputs[formFieldYear].Value())

		m.busy = true
		return m, m.cmdAddCoin(country, denomination, year)
	}

	return m.updateFormInputs(keyMsg)
}

func (m collectionModel) updateFormInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.formOpen || m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m collectionModel) viewForm() string {
	out := "Country      │ [" + m.inputs[formFieldCountry].View() + "]\n"
	out += "Denomination │ [" + m.inputs[formFieldDenomination].View() + "]\n"
	out += "Year         │ [" + m.inputs[formFieldYear].View() + "]\n"
	if m.busy {
		out += "\nSaving...\n"
	}
	return renderPage("ADD COIN", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: submit")
}
