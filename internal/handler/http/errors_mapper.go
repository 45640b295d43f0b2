package http

import (
	"errors"
	"net/http"

	"github.com/Rafail-Drakakis/Coins-collection/internal/service"
	"github.com/Rafail-Drakakis/Coins-collection/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoDataProvided:     http.StatusBadRequest,
	service.ErrMissingYear:        http.StatusBadRequest,
	service.ErrEmptyCountryOrDeno: http.StatusBadRequest,
	service.ErrYearNotInteger:     http.StatusBadRequest,
	service.ErrYearOutOfRange:     http.StatusBadRequest,

	store.ErrCoinNotFound:      http.StatusNotFound,
	store.ErrCoinAlreadyExists: http.StatusConflict,
}

// errorMessageMap overrides the wire text for errors whose Go message
// differs from what the API answers.
var errorMessageMap = map[error]string{
	store.ErrCoinNotFound:      "Coin not found",
	store.ErrCoinAlreadyExists: "Coin already exists",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}
