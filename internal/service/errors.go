package service

import "errors"

// Validation errors of AddCoin. Their texts are part of the wire
// contract: the handler serialises them verbatim into the {error}
// payload, matching what the API has always answered.
var (
	ErrNoDataProvided     = errors.New("No data provided")
	ErrMissingYear        = errors.New("Missing required field: year")
	ErrEmptyCountryOrDeno = errors.New("Country and denomination cannot be empty")
	ErrYearNotInteger     = errors.New("Year must be a valid integer")
	ErrYearOutOfRange     = errors.New("Year must be between 1 and 9999")
)
