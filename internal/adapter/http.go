package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Rafail-Drakakis/Coins-collection/internal/config"
	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

type httpCoinClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPCoinClient constructs the HTTP/REST implementation of
// [CoinClient]. The base URL from cfg.HTTPAddress is normalised (a
// bare host:port gets an http:// scheme) and validated.
func NewHTTPCoinClient(cfg config.ClientAdapter, logger *logger.Logger) (CoinClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCoinClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [CoinClient]. It GETs /coins and decodes the coin
// array.
func (h *httpCoinClient) List(ctx context.Context) ([]models.Coin, error) {
	var coins []models.Coin
	var failure models.MutationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&coins).
		SetError(&failure).
		Get("/coins")
	if err != nil {
		return nil, fmt.Errorf("list coins request: %w", err)
	}
	if err = mapMutationError(resp, failure); err != nil {
		return nil, err
	}

	return coins, nil
}

// Add implements [CoinClient]. It POSTs the form values to /coins and
// returns the backend status.
func (h *httpCoinClient) Add(ctx context.Context, country, denomination, year string) (string, error) {
	var result models.MutationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"country":      country,
			"denomination": denomination,
			"year":         year,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/coins")
	if err != nil {
		return "", fmt.Errorf("add coin request: %w", err)
	}
	if err = mapMutationError(resp, result); err != nil {
		return "", err
	}

	return result.Status, nil
}

// Remove implements [CoinClient]. It DELETEs /coins/{id} and returns
// the backend status.
func (h *httpCoinClient) Remove(ctx context.Context, id int64) (string, error) {
	var result models.MutationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&result).
		Delete(fmt.Sprintf("/coins/%d", id))
	if err != nil {
		return "", fmt.Errorf("remove coin request: %w", err)
	}
	if err = mapMutationError(resp, result); err != nil {
		return "", err
	}

	return result.Status, nil
}
