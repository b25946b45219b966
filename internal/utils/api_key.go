package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyAPIKey is returned by InspectAPIKey for blank keys.
var ErrEmptyAPIKey = errors.New("empty api key")

// InspectAPIKey decodes a pinning service API key without verifying its
// signature. Pinata issues JWTs; for any other format IsJWT is false and no
// error is returned, since the service itself is the authority on validity.
func InspectAPIKey(apiKey string) (models.APIKeyInfo, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return models.APIKeyInfo{}, ErrEmptyAPIKey
	}

	token, _, err := jwt.NewParser().ParseUnverified(apiKey, jwt.MapClaims{})
	if err != nil {
		return models.APIKeyInfo{IsJWT: false}, nil
	}

	info := models.APIKeyInfo{IsJWT: true}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return info, fmt.Errorf("error reading api key subject: %w", err)
	}
	info.Subject = sub

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return info, fmt.Errorf("error reading api key expiration: %w", err)
	}
	if exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}

	return info, nil
}
