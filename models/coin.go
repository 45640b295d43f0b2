package models

// Coin is one distinct (country, denomination, year) entry of the
// collection together with the number of physical copies held.
//
// ExistsCount is always >= 1 for a persisted coin: inserting a coin
// starts the count at one, and removing the last copy deletes the row
// instead of storing a zero.
type Coin struct {
	// ID is the server-assigned identifier. It is the stable sort key
	// of the collection views and the handle used for deletion.
	ID int64 `json:"id"`

	// Country, Denomination and Year describe the coin variant. They
	// are opaque to the client and validated only on the server.
	Country      string `json:"country"`
	Denomination string `json:"denomination"`
	Year         int    `json:"year"`

	// ExistsCount is the number of physical copies of this variant.
	ExistsCount int `json:"exists_count"`
}

// CoinRequest is the body of POST /coins. Year travels as a raw JSON
// value because the original contract accepts both "1985" and 1985;
// the service layer parses and range-checks it.
type CoinRequest struct {
	Country      string `json:"country"`
	Denomination string `json:"denomination"`
	Year         any    `json:"year"`
}
