// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// StatusSuccess is the status of a successfully pinned record.
const StatusSuccess = "success"

// statusErrorPrefix prefixes the status of a failed record.
const statusErrorPrefix = "Error - "

// OutputRecord is the persisted outcome of one input entry. CID and Web3URL
// are nil for failed entries and serialise as JSON null.
type OutputRecord struct {
	URL     string  `json:"url"`
	CID     *string `json:"cid"`
	Web3URL *string `json:"web3Url"`
	Status  string  `json:"status"`
}

// NewOutputRecord maps a [PinResult] for url onto an [OutputRecord].
func NewOutputRecord(url string, result PinResult) OutputRecord {
	if !result.Success {
		return OutputRecord{
			URL:    url,
			Status: statusErrorPrefix + result.Error,
		}
	}

	cid := result.CID
	web3URL := result.Web3URL
	return OutputRecord{
		URL:     url,
		CID:     &cid,
		Web3URL: &web3URL,
		Status:  StatusSuccess,
	}
}

// Succeeded reports whether the record describes a pinned file.
func (r OutputRecord) Succeeded() bool {
	return r.Status == StatusSuccess
}

// ErrorMessage returns the failure detail without the status prefix, or an
// empty string for successful records.
func (r OutputRecord) ErrorMessage() string {
	if r.Succeeded() {
		return ""
	}
	return strings.TrimPrefix(r.Status, statusErrorPrefix)
}
