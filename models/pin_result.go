// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PinResult is the outcome of pinning a single URL. It has two variants:
// a success carrying CID and Web3URL, and a failure carrying Error.
// Construct it with [NewPinSuccess] or [NewPinFailure] only.
type PinResult struct {
	Success bool
	CID     string
	Web3URL string
	Error   string
}

// NewPinSuccess builds the success variant.
func NewPinSuccess(cid, web3URL string) PinResult {
	return PinResult{Success: true, CID: cid, Web3URL: web3URL}
}

// NewPinFailure builds the failure variant from err.
func NewPinFailure(err error) PinResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return PinResult{Success: false, Error: msg}
}
