package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Rafail-Drakakis/Coins-collection/internal/adapter"
	"github.com/Rafail-Drakakis/Coins-collection/internal/mock"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

var testCoins = []models.Coin{
	{ID: 1, Country: "UK", Denomination: "1p", Year: 1985, ExistsCount: 3},
	{ID: 2, Country: "US", Denomination: "1c", Year: 1990, ExistsCount: 1},
}

func newTestModel(t *testing.T) (collectionModel, *mock.MockCoinClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock.NewMockCoinClient(ctrl)

	return newCollectionModel(context.Background(), client), client
}

// loadedModel delivers a coinsLoadedMsg so the model leaves its
// loading state with a populated view.
func loadedModel(t *testing.T) (collectionModel, *mock.MockCoinClient) {
	t.Helper()

	m, client := newTestModel(t)
	updated, _ := m.Update(coinsLoadedMsg{coins: testCoins})
	return updated.(collectionModel), client
}

func press(t *testing.T, m collectionModel, k string) (collectionModel, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	updated, cmd := m.Update(msg)
	return updated.(collectionModel), cmd
}

func typeText(t *testing.T, m collectionModel, text string) collectionModel {
	t.Helper()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(collectionModel)
}

func TestInit_LoadsCollection(t *testing.T) {
	m, client := newTestModel(t)
	client.EXPECT().List(gomock.Any()).Return(testCoins, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg, ok := cmd().(coinsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	updated, _ := m.Update(msg)
	got := updated.(collectionModel)

	assert.False(t, got.loading)
	assert.Len(t, got.view.unique, 2)
	assert.Len(t, got.view.duplicate, 1)
}

func TestLoadError_ShownOnStatusLine(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(coinsLoadedMsg{err: errors.New("connection refused")})
	got := updated.(collectionModel)

	assert.False(t, got.loading)
	assert.Equal(t, "connection refused", got.status)
}

func TestRemove_ConfirmAccept(t *testing.T) {
	m, client := loadedModel(t)

	m, _ = press(t, m, "d")
	require.True(t, m.confirmOpen)
	assert.Equal(t, int64(1), m.confirmRow.coin.ID)

	client.EXPECT().Remove(gomock.Any(), int64(1)).Return(models.StatusDecremented, nil)

	m, cmd := press(t, m, "y")
	assert.False(t, m.confirmOpen)
	assert.True(t, m.busy, "mutation in flight marks the model busy")
	require.NotNil(t, cmd)

	msg, ok := cmd().(coinDeletedMsg)
	require.True(t, ok)
	assert.Equal(t, models.StatusDecremented, msg.status)
}

func TestRemove_ConfirmDecline(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, "d")
	require.True(t, m.confirmOpen)

	m, cmd := press(t, m, "n")
	assert.False(t, m.confirmOpen)
	assert.Nil(t, cmd, "declining must not issue a request")
}

func TestRemove_DuplicatePaneTargetsDuplicateRow(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, "tab")
	require.Equal(t, paneDuplicate, m.pane)

	m, _ = press(t, m, "d")
	require.True(t, m.confirmOpen)
	assert.Equal(t, labelRemoveDuplicate, m.confirmRow.label)
}

func TestDeleteOutcome_DecrementedStatusAndReload(t *testing.T) {
	m, client := loadedModel(t)
	client.EXPECT().List(gomock.Any()).Return(testCoins, nil)

	updated, cmd := m.Update(coinDeletedMsg{status: models.StatusDecremented})
	got := updated.(collectionModel)

	assert.Equal(t, "➖ One copy removed.", got.status)
	assert.True(t, got.loading)
	require.NotNil(t, cmd, "list is reloaded after the outcome")
	cmd()
}

func TestDeleteOutcome_BackendErrorStillReloads(t *testing.T) {
	m, client := loadedModel(t)
	client.EXPECT().List(gomock.Any()).Return(testCoins, nil)

	updated, cmd := m.Update(coinDeletedMsg{err: &adapter.BackendError{Message: "not found"}})
	got := updated.(collectionModel)

	assert.Equal(t, "⚠️ not found", got.status)
	require.NotNil(t, cmd, "reload happens even when the backend reported an error")
	cmd()
}

func TestAddFlow_SubmitsTypedValues(t *testing.T) {
	m, client := loadedModel(t)

	m, _ = press(t, m, "a")
	require.True(t, m.formOpen)

	m = typeText(t, m, "UK")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "1p")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "1985")

	client.EXPECT().Add(gomock.Any(), "UK", "1p", "1985").Return(models.StatusAdded, nil)

	m, cmd := press(t, m, "enter")
	assert.True(t, m.busy)
	require.NotNil(t, cmd)

	msg, ok := cmd().(coinAddedMsg)
	require.True(t, ok)
	assert.Equal(t, models.StatusAdded, msg.status)
}

func TestAddOutcome_ResetsFormAndReloads(t *testing.T) {
	m, client := loadedModel(t)
	client.EXPECT().List(gomock.Any()).Return(testCoins, nil)

	m, _ = press(t, m, "a")
	require.True(t, m.formOpen)

	updated, cmd := m.Update(coinAddedMsg{status: models.StatusAdded})
	got := updated.(collectionModel)

	assert.False(t, got.formOpen, "form resets regardless of outcome")
	assert.Equal(t, "✅ Coin added.", got.status)
	assert.True(t, got.loading)
	require.NotNil(t, cmd)
	cmd()
}

func TestAddFlow_EscCancels(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, "a")
	require.True(t, m.formOpen)

	m, cmd := press(t, m, "esc")
	assert.False(t, m.formOpen)
	assert.Nil(t, cmd)
}

func TestBusyGuard_IgnoresMutationKeys(t *testing.T) {
	m, _ := loadedModel(t)
	m.busy = true

	m, _ = press(t, m, "d")
	assert.False(t, m.confirmOpen, "remove is ignored while a mutation is in flight")

	m, _ = press(t, m, "a")
	assert.False(t, m.formOpen, "add is ignored while a mutation is in flight")

	m, cmd := press(t, m, "r")
	assert.Nil(t, cmd, "reload is ignored while a mutation is in flight")
}

func TestNavigation_CursorMovesWithinPane(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.idx, "cursor stops at the last row")

	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.idx)
}

func TestNavigation_TabClampsCursor(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, "down")
	require.Equal(t, 1, m.idx)

	m, _ = press(t, m, "tab")
	assert.Equal(t, paneDuplicate, m.pane)
	assert.Equal(t, 0, m.idx, "cursor clamps to the shorter duplicate pane")
}

func TestView_ShowsPlaceholdersForEmptyCollection(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(coinsLoadedMsg{coins: nil})
	got := updated.(collectionModel)

	out := got.View()
	assert.Contains(t, out, "UNIQUE")
	assert.Contains(t, out, "DUPLICATES")
	assert.Equal(t, 2, strings.Count(out, noEntriesPlaceholder))
}
