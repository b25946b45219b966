// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadFile is a fetched file ready to be sent to the pinning service.
type UploadFile struct {
	// Name is the filename derived from the source URL.
	Name string
	// Content is the complete file body.
	Content []byte
	// Network is the requested visibility.
	Network Network
}

// UploadResponse is the body returned by the upload endpoint.
type UploadResponse struct {
	Data UploadedFile `json:"data"`
}

// UploadedFile describes a file stored by the pinning service. Only CID is
// used; the remaining fields are kept for logging.
type UploadedFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CID       string `json:"cid"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
	Network   string `json:"network"`
	CreatedAt string `json:"created_at"`
}

// SignedURLRequest is the body sent to the signed URL endpoint.
type SignedURLRequest struct {
	URL     string `json:"url"`
	Expires int64  `json:"expires"`
	Date    int64  `json:"date"`
	Method  string `json:"method"`
}

// SignedURLResponse is the body returned by the signed URL endpoint.
type SignedURLResponse struct {
	Data string `json:"data"`
}
