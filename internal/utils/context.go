// Package utils provides general-purpose helper utilities used across the
// application: context keys, HTTP client construction, JSON responses,
// identifier generation, filename derivation and API key inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key used to store the batch run identifier in the
// context.
//
//	ctx := context.WithValue(ctx, utils.RunIDCtxKey, runID)
var RunIDCtxKey = contextKey("runID")

// GetRunIDFromContext retrieves the run identifier from the context. ok is
// false when the value is missing or not a non-empty string.
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok && runID != ""
}
