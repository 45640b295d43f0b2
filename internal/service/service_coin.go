package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/internal/store"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

const (
	minYear = 1
	maxYear = 9999
)

type coinService struct {
	coinRepository store.CoinRepository

	logger *logger.Logger
}

func NewCoinService(coinRepository store.CoinRepository, logger *logger.Logger) CoinService {
	return &coinService{
		coinRepository: coinRepository,
		logger:         logger,
	}
}

func (s *coinService) ListCoins(ctx context.Context) ([]models.Coin, error) {
	return s.coinRepository.List(ctx)
}

// AddCoin validates the request the way the API contract has always
// validated it: country and denomination must be non-empty after
// trimming, and year must parse to an integer in [1, 9999]. The year
// arrives as a raw JSON value, so both 1985 and "1985" are accepted.
func (s *coinService) AddCoin(ctx context.Context, req models.CoinRequest) (string, error) {
	log := logger.FromContext(ctx)

	country := strings.TrimSpace(req.Country)
	denomination := strings.TrimSpace(req.Denomination)
	if country == "" || denomination == "" {
		return "", ErrEmptyCountryOrDeno
	}

	year, err := parseYear(req.Year)
	if err != nil {
		return "", err
	}
	if year < minYear || year > maxYear {
		return "", ErrYearOutOfRange
	}

	status, err := s.coinRepository.AddOrIncrement(ctx, country, denomination, year)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("country", country).
		Str("denomination", denomination).
		Int("year", year).
		Str("status", status).
		Msg("coin added")

	return status, nil
}

func (s *coinService) RemoveCoin(ctx context.Context, id int64) (string, error) {
	log := logger.FromContext(ctx)

	status, err := s.coinRepository.DeleteOrDecrement(ctx, id)
	if err != nil {
		return "", err
	}

	log.Debug().Int64("id", id).Str("status", status).Msg("coin removed")

	return status, nil
}

// parseYear converts the raw JSON year value into an int. JSON numbers
// decode as float64 and are truncated; strings are trimmed and parsed.
func parseYear(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrMissingYear
	case float64:
		return int(v), nil
	case string:
		year, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, ErrYearNotInteger
		}
		return year, nil
	default:
		return 0, ErrYearNotInteger
	}
}
