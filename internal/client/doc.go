// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the backend adapter into a single
// process lifecycle.
package client
