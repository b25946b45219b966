// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists batch runs and their output records.
//
// The store is append-only: a record is inserted once, at the position of its
// input entry, and never updated. Runs are the only rows that change, and
// only to receive their finish time.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-web3-uploader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/result_repository_mock.go -package=mock

// ResultRepository is the durable dataset of pin outcomes.
type ResultRepository interface {
	CreateRun(ctx context.Context, run models.Run) error
	FinishRun(ctx context.Context, runID string, finishedAt time.Time) error

	SaveRecord(ctx context.Context, runID string, position int, record models.OutputRecord) error

	GetRecords(ctx context.Context, runID string) ([]models.OutputRecord, error)
	GetRuns(ctx context.Context) ([]models.Run, error)
	GetRun(ctx context.Context, runID string) (models.Run, error)
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
