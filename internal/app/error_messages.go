// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the uploader application runtime and the shared
// application-layer constants used by the results API handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRunNotFound is returned when the requested run id is unknown.
	MsgRunNotFound = "run not found"

	// MsgNoRunIDProvided is returned when the run id path parameter is blank.
	MsgNoRunIDProvided = "no run id provided"
)
