// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

package models

// Mutation statuses reported by the backend. POST /coins answers with
// StatusAdded or StatusIncremented, DELETE /coins/{id} with
// StatusDeleted or StatusDecremented.
const (
	StatusAdded       = "added"
	StatusIncremented = "incremented"
	StatusDeleted     = "deleted"
	StatusDecremented = "decremented"
)

// MutationResponse is the JSON envelope of every mutating endpoint.
// Exactly one of Status and Error is set: a populated Error means the
// operation failed and the message is meant to be shown verbatim.
type MutationResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}
