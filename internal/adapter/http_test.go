// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafail-Drakakis/Coins-collection/internal/config"
	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

func newTestClient(t *testing.T, handler http.Handler) CoinClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPCoinClient(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:8080", "http://localhost:8080", false},
		{"bare host port", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "   ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHTTPCoinClient_List(t *testing.T) {
	want := []models.Coin{
		{ID: 1, Country: "UK", Denomination: "1p", Year: 1985, ExistsCount: 3},
		{ID: 2, Country: "US", Denomination: "1c", Year: 1990, ExistsCount: 1},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/coins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))

	coins, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, coins)
}

func TestHTTPCoinClient_List_BackendError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.MutationResponse{Error: "database is locked"})
	}))

	_, err := client.List(context.Background())

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "database is locked", backendErr.Message)
}

func TestHTTPCoinClient_Add(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/coins", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "UK", body["country"])
		assert.Equal(t, "1p", body["denomination"])
		assert.Equal(t, "1985", body["year"], "year travels as typed")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MutationResponse{Status: models.StatusAdded})
	}))

	status, err := client.Add(context.Background(), "UK", "1p", "1985")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAdded, status)
}

func TestHTTPCoinClient_Add_ValidationError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MutationResponse{Error: "Year must be a valid integer"})
	}))

	_, err := client.Add(context.Background(), "UK", "1p", "MCMLXXXV")

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Year must be a valid integer", backendErr.Message)
}

func TestHTTPCoinClient_Remove(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/coins/4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MutationResponse{Status: models.StatusDecremented})
	}))

	status, err := client.Remove(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDecremented, status)
}

func TestHTTPCoinClient_Remove_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.MutationResponse{Error: "Coin not found"})
	}))

	_, err := client.Remove(context.Background(), 99)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Coin not found", backendErr.Message)
}

func TestHTTPCoinClient_NonJSONError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))

	_, err := client.Remove(context.Background(), 1)
	require.Error(t, err)

	var backendErr *BackendError
	assert.False(t, errors.As(err, &backendErr), "plain text failures are not backend-described errors")
	assert.Contains(t, err.Error(), "http 502")
}
