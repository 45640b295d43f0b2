// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

package adapter

import (
	"context"

	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// CoinClient is the client-side view of the coin server API. The TUI
// depends on this interface only, so tests can substitute it.
//
// Form values travel as typed by the user; validation lives on the
// server, and a validation failure comes back as *BackendError.
type CoinClient interface {
	// List fetches the full collection (GET /coins).
	List(ctx context.Context) ([]models.Coin, error)

	// Add creates a coin or counts another copy (POST /coins).
	// Returns models.StatusAdded or models.StatusIncremented.
	Add(ctx context.Context, country, denomination, year string) (string, error)

	// Remove removes one copy of a coin (DELETE /coins/{id}).
	// Returns models.StatusDeleted or models.StatusDecremented.
	Remove(ctx context.Context, id int64) (string, error)
}
