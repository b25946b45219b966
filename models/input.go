// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InputEntry is a single source file to be pinned.
type InputEntry struct {
	URL string `json:"url"`
}

// Input is the document a batch run is started with. Fields other than
// StartURLs are optional; missing values fall back to the application
// configuration and then to the package defaults.
type Input struct {
	// StartURLs is the ordered list of files to pin. Duplicates are processed
	// independently.
	StartURLs []InputEntry `json:"startUrls"`

	// PinataAPIKey is the bearer credential for the pinning service.
	PinataAPIKey string `json:"pinataApiKey,omitempty"`

	// Visibility is either "public" or "private".
	Visibility string `json:"visibility,omitempty"`

	// PrivateExpiration is the signed URL lifetime in seconds.
	PrivateExpiration int64 `json:"privateExpiration,omitempty"`
}
