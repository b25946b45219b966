package app

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
	"github.com/MKhiriev/go-web3-uploader/models"
)

// BuildRunConfig resolves the settings of a batch. Values from the input
// document win, configuration fills what the document leaves empty, and
// package defaults fill the rest.
func BuildRunConfig(input models.Input, cfg config.App, log *logger.Logger) models.RunConfig {
	apiKey := firstNonEmpty(input.PinataAPIKey, cfg.APIKey)

	visibility := firstSet(input.Visibility, cfg.Visibility, config.DefaultVisibility)
	if !models.IsKnownNetwork(visibility) {
		log.Warn().Str("visibility", visibility).Msg("unknown visibility, files will be public")
	}

	// Non-positive expirations count as unset at every level.
	expiration := input.PrivateExpiration
	if expiration <= 0 {
		expiration = cfg.PrivateExpiration
	}
	if expiration <= 0 {
		expiration = config.DefaultPrivateExpiration
	}

	delay := cfg.RateLimitDelay
	if delay <= 0 {
		delay = models.DefaultRateLimitDelay
	}

	return models.RunConfig{
		APIKey:  apiKey,
		Network: models.ParseNetwork(visibility, expiration),
		Delay:   delay,
	}
}

// checkAPIKey logs what can be told about apiKey locally. It never blocks a
// run: the pinning service has the final word.
func checkAPIKey(apiKey string, now time.Time, log *logger.Logger) {
	if apiKey == "" {
		return
	}

	info, err := utils.InspectAPIKey(apiKey)
	if err != nil {
		log.Warn().Err(err).Msg("api key could not be inspected")
		return
	}
	if !info.IsJWT {
		log.Warn().Msg("api key is not a JWT, Pinata may reject it")
		return
	}
	if info.Expired(now) {
		log.Warn().Time("expires_at", *info.ExpiresAt).Msg("api key has expired")
		return
	}

	log.Debug().Str("subject", info.Subject).Msg("api key inspected")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// firstSet is firstNonEmpty without trimming: the chosen value is returned
// exactly as given.
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
