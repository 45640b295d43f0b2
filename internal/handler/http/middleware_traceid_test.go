package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler()

	rec := executeWithTraceID(h, "my-custom-trace-id")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenMissing(t *testing.T) {
	h := newTestHandler()

	rec := executeWithTraceID(h, "")

	require.Equal(t, http.StatusOK, rec.Code)

	got := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated trace id must be a valid UUID")
}
