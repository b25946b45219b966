// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultRateLimitDelay is the pause between two consecutive entries.
const DefaultRateLimitDelay = time.Second

// RunConfig is the immutable configuration of one batch run.
type RunConfig struct {
	// APIKey is the pinning service bearer credential. Required.
	APIKey string
	// Network is the visibility every entry is uploaded with.
	Network Network
	// Delay is the fixed pause between entries.
	Delay time.Duration
}

// Run describes one batch run stored alongside its output records.
type Run struct {
	RunID      string     `json:"run_id"`
	Network    string     `json:"network"`
	Total      int        `json:"total"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
