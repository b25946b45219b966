// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// outside world: arbitrary source URLs and the pinning service REST API.
//
// The primary abstraction is [PinningAdapter], which decouples the service
// layer from the HTTP client. The package ships a resty-based implementation
// ([NewHTTPPinningAdapter]).
//
// Non-2xx replies are mapped onto the typed errors [FetchError],
// [UploadError] and [SignError] so that callers can use [errors.As] to
// inspect status codes and response bodies.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-web3-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pinning_adapter_mock.go -package=mock

// PinningAdapter defines the outbound calls of a single pin operation.
// Implementations never retry.
type PinningAdapter interface {
	// Fetch downloads rawURL and returns the complete body. Returns a
	// *[FetchError] when the request fails or the status is not 2xx.
	Fetch(ctx context.Context, rawURL string) ([]byte, error)

	// Upload sends file to the pinning service authenticated with apiKey and
	// returns the content identifier of the stored file. Returns an
	// *[UploadError] on a non-2xx reply or an unusable response body.
	Upload(ctx context.Context, apiKey string, file models.UploadFile) (string, error)

	// CreateSignedURL asks the pinning service for a time-limited link to a
	// private file. Returns a *[SignError] on a non-2xx reply or an unusable
	// response body.
	CreateSignedURL(ctx context.Context, apiKey string, req models.SignedURLRequest) (string, error)
}
