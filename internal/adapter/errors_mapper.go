package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Rafail-Drakakis/Coins-collection/models"
)

// mapMutationError turns a non-success response into an error. A JSON
// {error} payload becomes *BackendError with the verbatim message;
// anything else falls back to a plain "http NNN" error.
func mapMutationError(resp *resty.Response, result models.MutationResponse) error {
	if result.Error != "" {
		return &BackendError{Message: result.Error}
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
