// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the uploader: pinning a single
// URL, driving a batch of URLs through the pinning service, and reading back
// recorded runs.
package service

import (
	"context"

	"github.com/MKhiriev/go-web3-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PinService pins the content behind one URL.
type PinService interface {
	// Pin never returns an error: every failure is folded into a failed
	// [models.PinResult].
	Pin(ctx context.Context, rawURL, apiKey string, network models.Network) models.PinResult
}

// BatchService processes a list of entries sequentially and appends one
// record per entry to the result store.
type BatchService interface {
	Run(ctx context.Context, entries []models.InputEntry, cfg models.RunConfig) ([]models.OutputRecord, error)
}

// ResultService exposes recorded runs read-only.
type ResultService interface {
	ListRuns(ctx context.Context) ([]models.Run, error)
	GetRun(ctx context.Context, runID string) (models.Run, error)
	GetRunRecords(ctx context.Context, runID string) ([]models.OutputRecord, error)
}
