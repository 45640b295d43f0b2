package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Query builders for the coins table. Squirrel renders placeholders in
// the driver's format ($N for Postgres, ? for SQLite), so every query
// is built from the DB's statement builder instead of a constant.

var coinColumns = []string{"id", "country", "denomination", "year", "exists_count"}

func buildSelectAllCoinsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.
		Select(coinColumns...).
		From("coins").
		OrderBy("id ASC").
		ToSql()
}

func buildSelectCoinByVariantQuery(sb sq.StatementBuilderType, country, denomination string, year int) (string, []any, error) {
	return sb.
		Select("id", "exists_count").
		From("coins").
		Where(sq.Eq{"country": country, "denomination": denomination, "year": year}).
		ToSql()
}

func buildInsertCoinQuery(sb sq.StatementBuilderType, country, denomination string, year int) (string, []any, error) {
	return sb.
		Insert("coins").
		Columns("country", "denomination", "year", "exists_count").
		Values(country, denomination, year, 1).
		ToSql()
}

func buildIncrementCoinQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.
		Update("coins").
		Set("exists_count", sq.Expr("exists_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectCoinCountQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.
		Select("exists_count").
		From("coins").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDecrementCoinQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.
		Update("coins").
		Set("exists_count", sq.Expr("exists_count - 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCoinQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.
		Delete("coins").
		Where(sq.Eq{"id": id}).
		ToSql()
}
