// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyRunID is reported when the {runID} path parameter is blank after
// trimming. Callers can match against it with [errors.Is].
var ErrEmptyRunID = errors.New("empty `runID` path parameter")
