package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCID is wrapped by [UploadError] when the upload reply carries
	// no content identifier.
	ErrEmptyCID = errors.New("no cid in upload response")
	// ErrInvalidCID is wrapped by [UploadError] when the content identifier
	// in the upload reply cannot be decoded.
	ErrInvalidCID = errors.New("invalid cid in upload response")
	// ErrEmptySignedURL is wrapped by [SignError] when the reply carries no
	// link.
	ErrEmptySignedURL = errors.New("no signed url in response")
)

// FetchError reports a failed download of a source file. StatusCode is zero
// when no response was received.
type FetchError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to fetch file: %v", e.Err)
	}
	return fmt.Sprintf("Failed to fetch file: %d %s", e.StatusCode, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UploadError reports a rejected or unusable upload.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Pinata upload failed: %v", e.Err)
	}
	return fmt.Sprintf("Pinata upload failed: %d - %s", e.StatusCode, e.Body)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// SignError reports a failed signed URL request.
type SignError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SignError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to generate signed URL: %v", e.Err)
	}
	return fmt.Sprintf("Failed to generate signed URL: %d - %s", e.StatusCode, e.Body)
}

func (e *SignError) Unwrap() error {
	return e.Err
}
