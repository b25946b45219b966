package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/adapter"
	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
	"github.com/MKhiriev/go-web3-uploader/models"
)

type pinService struct {
	adapter adapter.PinningAdapter

	publicGatewayURL  string
	privateGatewayURL string

	now func() time.Time

	logger *logger.Logger
}

// NewPinService builds a [PinService] over pinningAdapter. Gateway prefixes
// come from cfg and are concatenated with the CID as they are.
func NewPinService(pinningAdapter adapter.PinningAdapter, cfg config.Adapter, logger *logger.Logger) PinService {
	return &pinService{
		adapter:           pinningAdapter,
		publicGatewayURL:  cfg.PublicGatewayURL,
		privateGatewayURL: cfg.PrivateGatewayURL,
		now:               time.Now,
		logger:            logger,
	}
}

// Pin implements [PinService]: fetch, upload and, for private files, sign.
func (s *pinService) Pin(ctx context.Context, rawURL, apiKey string, network models.Network) (result models.PinResult) {
	log := s.logFor(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("url", rawURL).Msg("pin panicked")
			result = models.NewPinFailure(fmt.Errorf("unexpected error: %v", r))
		}
	}()

	contentID, web3URL, err := s.pin(ctx, rawURL, apiKey, network)
	if err != nil {
		log.Err(err).Str("url", rawURL).Msg("error processing url")
		return models.NewPinFailure(err)
	}

	log.Info().
		Str("url", rawURL).
		Str("cid", contentID).
		Str("network", network.String()).
		Msg("url pinned")

	return models.NewPinSuccess(contentID, web3URL)
}

func (s *pinService) pin(ctx context.Context, rawURL, apiKey string, network models.Network) (string, string, error) {
	content, err := s.adapter.Fetch(ctx, rawURL)
	if err != nil {
		return "", "", err
	}

	name := utils.DeriveFilename(rawURL)
	contentID, err := s.adapter.Upload(ctx, apiKey, models.UploadFile{
		Name:    name,
		Content: content,
		Network: network,
	})
	if err != nil {
		return "", "", err
	}

	switch network.Kind() {
	case models.NetworkPrivate:
		signedURL, err := s.adapter.CreateSignedURL(ctx, apiKey, models.SignedURLRequest{
			URL:     s.privateGatewayURL + contentID,
			Expires: network.ExpirationSeconds(),
			Date:    s.now().Unix(),
			Method:  http.MethodGet,
		})
		if err != nil {
			return "", "", err
		}
		return contentID, signedURL, nil
	case models.NetworkPublic:
		return contentID, s.publicGatewayURL + contentID, nil
	default:
		return "", "", fmt.Errorf("unsupported network %q", network.String())
	}
}

// logFor prefers the run-scoped logger carried by ctx.
func (s *pinService) logFor(ctx context.Context) *logger.Logger {
	if _, ok := utils.GetRunIDFromContext(ctx); ok {
		return logger.FromContext(ctx)
	}
	return s.logger
}
