package service

import (
	"context"

	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// CoinService owns the collection workflow: listing, adding a coin (or
// counting another copy of an existing variant), and removing a copy.
type CoinService interface {
	// ListCoins returns the whole collection ordered by ascending id.
	ListCoins(ctx context.Context) ([]models.Coin, error)

	// AddCoin validates req and inserts the variant or increments its
	// copy count. Returns models.StatusAdded or models.StatusIncremented.
	AddCoin(ctx context.Context, req models.CoinRequest) (string, error)

	// RemoveCoin removes one copy of the coin with the given id.
	// Returns models.StatusDeleted or models.StatusDecremented.
	RemoveCoin(ctx context.Context, id int64) (string, error)
}

// AppInfoService reports build/application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
