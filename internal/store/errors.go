package store

import "errors"

var (
	// ErrCoinNotFound is returned when a delete targets an id that is
	// not in the collection.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrCoinAlreadyExists is returned when an insert races another
	// writer on the (country, denomination, year) unique constraint.
	ErrCoinAlreadyExists = errors.New("coin already exists")
)
