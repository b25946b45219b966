// Package http implements the read-only results API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging and panic recovery are handled in this package before
// requests are delegated to the service layer.
package http
