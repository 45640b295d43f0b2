// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status
// code and the number of body bytes written, so middleware can inspect
// the response after the downstream handler returned.
//
// WriteHeader is forwarded to the underlying writer exactly once;
// repeated calls are ignored, matching the [http.ResponseWriter]
// contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the code recorded on the first WriteHeader call.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size is the running total of bytes written to the body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly committing
// status 200 if WriteHeader was never called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
