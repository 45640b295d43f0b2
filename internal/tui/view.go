package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// Row action labels. The label is picked by the three-way rule: a
// duplicate-view row always offers "Remove duplicate", a unique-view
// row offers "Remove one" while further copies exist and "Remove" for
// the last copy.
const (
	labelRemove          = "Remove"
	labelRemoveOne       = "Remove one"
	labelRemoveDuplicate = "Remove duplicate"
)

const (
	noEntriesPlaceholder = "no entries"
	uiDivider            = "──────────────────────────────────────────────────────"
)

type pane int

const (
	paneUnique pane = iota
	paneDuplicate
)

// coinRow is one rendered table row: the coin, the displayed count and
// the action label for its delete button.
type coinRow struct {
	coin        models.Coin
	count       int
	label       string
	isDuplicate bool
}

// collectionView is the partitioned, display-ready form of the coin
// list.
type collectionView struct {
	unique    []coinRow
	duplicate []coinRow
}

// buildCollectionView sorts the list ascending by id and partitions it
// into the unique view (every coin once, displayed count capped at 1)
// and the duplicate view (coins with more than one copy, displayed
// count ExistsCount-1).
func buildCollectionView(coins []models.Coin) collectionView {
	sorted := make([]models.Coin, len(coins))
	copy(sorted, coins)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var view collectionView
	for _, coin := range sorted {
		uniqueLabel := labelRemove
		if coin.ExistsCount > 1 {
			uniqueLabel = labelRemoveOne
		}
		view.unique = append(view.unique, coinRow{
			coin:  coin,
			count: 1,
			label: uniqueLabel,
		})

		if coin.ExistsCount > 1 {
			view.duplicate = append(view.duplicate, coinRow{
				coin:        coin,
				count:       coin.ExistsCount - 1,
				label:       labelRemoveDuplicate,
				isDuplicate: true,
			})
		}
	}

	return view
}

func describeCoin(c models.Coin) string {
	return fmt.Sprintf("%s %s (%d)", c.Country, c.Denomination, c.Year)
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func renderRows(rows []coinRow, selected int, active bool) string {
	if len(rows) == 0 {
		return noEntriesPlaceholder + "\n"
	}

	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		if active && i == selected {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-30s x%-3d [%s]\n", cursor, describeCoin(row.coin), row.count, row.label))
	}
	return b.String()
}

func (m collectionModel) View() string {
	if m.formOpen {
		return m.viewForm()
	}
	if m.confirmOpen {
		return m.viewConfirm()
	}

	var out strings.Builder

	if m.loading {
		out.WriteString("Loading collection...\n")
		return renderPage("COIN COLLECTION", strings.TrimRight(out.String(), "\n"), "q: quit")
	}

	if m.status != "" {
		out.WriteString(m.status)
		out.WriteString("\n\n")
	}

	out.WriteString("UNIQUE\n")
	out.WriteString(renderRows(m.view.unique, m.idx, m.pane == paneUnique))
	out.WriteString("\nDUPLICATES\n")
	out.WriteString(renderRows(m.view.duplicate, m.idx, m.pane == paneDuplicate))

	hotKeys := "a: add │ d: remove │ c: copy │ r: reload │ tab: pane │ ↑/↓: move │ q: quit"
	return renderPage("COIN COLLECTION", strings.TrimRight(out.String(), "\n"), hotKeys)
}
