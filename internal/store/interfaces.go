package store

import (
	"context"

	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// CoinRepository is the persistence interface of the coin collection.
// Statuses returned by the mutating methods are the wire statuses of
// models (StatusAdded, StatusIncremented, StatusDeleted,
// StatusDecremented).
type CoinRepository interface {
	// List returns the whole collection ordered by ascending id.
	List(ctx context.Context) ([]models.Coin, error)

	// AddOrIncrement inserts the (country, denomination, year) variant
	// with exists_count = 1, or increments the count of the existing
	// row. Both paths run in one transaction.
	AddOrIncrement(ctx context.Context, country, denomination string, year int) (string, error)

	// DeleteOrDecrement decrements the copy count of the coin with the
	// given id, deleting the row when the last copy goes. Returns
	// ErrCoinNotFound for an unknown id.
	DeleteOrDecrement(ctx context.Context, id int64) (string, error)
}

// ErrorClassificator translates driver-level errors into store
// sentinel errors. Unknown errors pass through unchanged.
type ErrorClassificator interface {
	Classify(err error) error
}
