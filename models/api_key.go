// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// APIKeyInfo is what can be learned about a pinning service API key without
// contacting the service.
type APIKeyInfo struct {
	// IsJWT reports whether the key parsed as a JSON Web Token.
	IsJWT bool
	// Subject is the "sub" claim, when present.
	Subject string
	// ExpiresAt is the "exp" claim, when present.
	ExpiresAt *time.Time
}

// Expired reports whether the key carries an expiration that lies before now.
func (i APIKeyInfo) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}
