package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// coinRepository is the SQL-backed implementation of [CoinRepository].
// It works against either driver through the DB's statement builder.
type coinRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCoinRepository constructs a [CoinRepository] backed by the
// provided database connection and logger.
func NewCoinRepository(db *DB, logger *logger.Logger) CoinRepository {
	logger.Debug().Msg("creating coin repository")
	return &coinRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [CoinRepository]. Rows come back ordered by
// ascending id, the canonical order of the collection views.
func (r *coinRepository) List(ctx context.Context) ([]models.Coin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCoinsQuery(r.db.sb)
	if err != nil {
		return nil, fmt.Errorf("build select all coins query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*coinRepository.List").Msg("error querying coins")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	coins := make([]models.Coin, 0)
	for rows.Next() {
		var coin models.Coin
		if err = rows.Scan(&coin.ID, &coin.Country, &coin.Denomination, &coin.Year, &coin.ExistsCount); err != nil {
			log.Err(err).Str("func", "*coinRepository.List").Msg("error scanning coin row")
			return nil, err
		}
		coins = append(coins, coin)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return coins, nil
}

// AddOrIncrement implements [CoinRepository]. The lookup and the
// insert/update run in one transaction so a coin is never counted
// twice for a single request.
func (r *coinRepository) AddOrIncrement(ctx context.Context, country, denomination string, year int) (string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin add coin tx: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectCoinByVariantQuery(r.db.sb, country, denomination, year)
	if err != nil {
		return "", fmt.Errorf("build select coin by variant query: %w", err)
	}

	var id int64
	var count int
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id, &count)

	var status string
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query, args, err = buildInsertCoinQuery(r.db.sb, country, denomination, year)
		if err != nil {
			return "", fmt.Errorf("build insert coin query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*coinRepository.AddOrIncrement").Msg("error inserting coin")
			return "", r.db.classify(err)
		}
		status = models.StatusAdded

	case err != nil:
		log.Err(err).Str("func", "*coinRepository.AddOrIncrement").Msg("error looking up coin variant")
		return "", fmt.Errorf("unexpected DB error: %w", err)

	default:
		query, args, err = buildIncrementCoinQuery(r.db.sb, id)
		if err != nil {
			return "", fmt.Errorf("build increment coin query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*coinRepository.AddOrIncrement").Msg("error incrementing coin count")
			return "", fmt.Errorf("unexpected DB error: %w", err)
		}
		status = models.StatusIncremented
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit add coin tx: %w", err)
	}

	return status, nil
}

// DeleteOrDecrement implements [CoinRepository]. Removing one of
// several copies decrements exists_count; removing the last copy
// deletes the row.
func (r *coinRepository) DeleteOrDecrement(ctx context.Context, id int64) (string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin delete coin tx: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectCoinCountQuery(r.db.sb, id)
	if err != nil {
		return "", fmt.Errorf("build select coin count query: %w", err)
	}

	var count int
	err = tx.QueryRowContext(ctx, query, args...).Scan(&count)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCoinNotFound
	case err != nil:
		log.Err(err).Str("func", "*coinRepository.DeleteOrDecrement").Msg("error looking up coin")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	var status string
	if count > 1 {
		query, args, err = buildDecrementCoinQuery(r.db.sb, id)
		if err != nil {
			return "", fmt.Errorf("build decrement coin query: %w", err)
		}
		status = models.StatusDecremented
	} else {
		query, args, err = buildDeleteCoinQuery(r.db.sb, id)
		if err != nil {
			return "", fmt.Errorf("build delete coin query: %w", err)
		}
		status = models.StatusDeleted
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*coinRepository.DeleteOrDecrement").Msg("error applying coin delete")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit delete coin tx: %w", err)
	}

	return status, nil
}
