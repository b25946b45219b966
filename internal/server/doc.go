// Package server runs the results API over HTTP.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
