package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rafail-Drakakis/Coins-collection/internal/config"
	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
)

// Storages aggregates all repositories of the server.
type Storages struct {
	CoinRepository CoinRepository
}

// NewStorages connects the database selected by the DSN (a
// postgres:// URI opens PostgreSQL, anything else is a SQLite file
// path), runs migrations, and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("connect coins database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate coins database: %w", err)
	}

	return &Storages{
		CoinRepository: NewCoinRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
