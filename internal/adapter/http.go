package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/go-resty/resty/v2"
	"github.com/ipfs/go-cid"
)

type httpPinningAdapter struct {
	client *utils.HTTPClient

	uploadURL string
	signURL   string

	logger *logger.Logger
}

// NewHTTPPinningAdapter constructs a resty-backed [PinningAdapter]. A single
// client, and therefore a single connection pool, serves source downloads and
// pinning service calls.
//
// Returns an error if the upload or sign endpoint is not an absolute URL.
func NewHTTPPinningAdapter(cfg config.Adapter, logger *logger.Logger) (PinningAdapter, error) {
	uploadURL, err := normalizeEndpoint(cfg.UploadURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upload url: %w", err)
	}
	signURL, err := normalizeEndpoint(cfg.SignURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sign url: %w", err)
	}

	return &httpPinningAdapter{
		client:    utils.NewHTTPClient(cfg.RequestTimeout),
		uploadURL: uploadURL,
		signURL:   signURL,
		logger:    logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Fetch implements [PinningAdapter]. The whole body is held in memory.
func (h *httpPinningAdapter) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if err = mapFetchError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("url", rawURL).
		Int("size", len(resp.Body())).
		Msg("source file fetched")

	return resp.Body(), nil
}

// Upload implements [PinningAdapter]. It POSTs a multipart form with the
// fields "file", "network" and "name" and extracts data.cid from the reply.
// The CID is checked to decode as a valid content identifier.
func (h *httpPinningAdapter) Upload(ctx context.Context, apiKey string, file models.UploadFile) (string, error) {
	resp, err := h.authedRequest(ctx, apiKey).
		SetFileReader("file", file.Name, bytes.NewReader(file.Content)).
		SetMultipartFormData(map[string]string{
			"network": file.Network.String(),
			"name":    file.Name,
		}).
		Post(h.uploadURL)
	if err != nil {
		return "", &UploadError{Err: fmt.Errorf("upload request: %w", err)}
	}
	if err = mapUploadError(resp); err != nil {
		return "", err
	}

	var result models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", &UploadError{StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode upload response: %w", err)}
	}

	contentID := strings.TrimSpace(result.Data.CID)
	if contentID == "" {
		return "", &UploadError{StatusCode: resp.StatusCode(), Err: ErrEmptyCID}
	}
	if _, err = cid.Decode(contentID); err != nil {
		return "", &UploadError{StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w %q: %v", ErrInvalidCID, contentID, err)}
	}

	h.logger.Debug().
		Str("name", file.Name).
		Str("cid", contentID).
		Str("id", result.Data.ID).
		Int64("size", result.Data.Size).
		Str("network", file.Network.String()).
		Msg("file uploaded")

	return contentID, nil
}

// CreateSignedURL implements [PinningAdapter]. It POSTs req as JSON and
// returns the "data" string of the reply.
func (h *httpPinningAdapter) CreateSignedURL(ctx context.Context, apiKey string, req models.SignedURLRequest) (string, error) {
	resp, err := h.authedRequest(ctx, apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.signURL)
	if err != nil {
		return "", &SignError{Err: fmt.Errorf("sign request: %w", err)}
	}
	if err = mapSignError(resp); err != nil {
		return "", err
	}

	var result models.SignedURLResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", &SignError{StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode sign response: %w", err)}
	}
	if result.Data == "" {
		return "", &SignError{StatusCode: resp.StatusCode(), Err: ErrEmptySignedURL}
	}

	return result.Data, nil
}

func (h *httpPinningAdapter) authedRequest(ctx context.Context, apiKey string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(apiKey))
}
