package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/migrations"
)

// DB bundles an open database handle with the pieces that differ per
// driver: the squirrel placeholder format, the goose dialect, and the
// driver error classifier.
type DB struct {
	*sql.DB

	sb                 sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	return db.errorClassificator.Classify(err)
}
