package tui

import (
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

type coinsLoadedMsg struct {
	coins []models.Coin
	err   error
}

type coinAddedMsg struct {
	status string
	err    error
}

type coinDeletedMsg struct {
	status string
	err    error
}
