// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NetworkKind enumerates the visibility modes supported by the pinning
// service.
type NetworkKind int

const (
	// NetworkPublic content is reachable through the public gateway.
	NetworkPublic NetworkKind = iota
	// NetworkPrivate content is only reachable through a signed URL.
	NetworkPrivate
)

// DefaultPrivateExpiration is the signed URL lifetime used when none is given.
const DefaultPrivateExpiration = 86400 * time.Second

// Network is the visibility a file is uploaded with. Only the private variant
// carries an expiration; build values with [PublicNetwork], [PrivateNetwork]
// or [ParseNetwork].
type Network struct {
	kind       NetworkKind
	expiration time.Duration
}

// PublicNetwork returns the public visibility.
func PublicNetwork() Network {
	return Network{kind: NetworkPublic}
}

// PrivateNetwork returns the private visibility whose signed URLs stay valid
// for expiration. Non-positive values are replaced by
// [DefaultPrivateExpiration].
func PrivateNetwork(expiration time.Duration) Network {
	if expiration <= 0 {
		expiration = DefaultPrivateExpiration
	}
	return Network{kind: NetworkPrivate, expiration: expiration}
}

// ParseNetwork maps a visibility string onto a [Network]. Only the exact
// value "private" selects the private variant; every other value, including
// the empty string and "Private", resolves to public.
func ParseNetwork(value string, expirationSeconds int64) Network {
	if value == "private" {
		return PrivateNetwork(time.Duration(expirationSeconds) * time.Second)
	}
	return PublicNetwork()
}

// IsKnownNetwork reports whether value names one of the supported visibilities.
// The empty string counts as known because it means "use the default".
func IsKnownNetwork(value string) bool {
	switch value {
	case "", "public", "private":
		return true
	default:
		return false
	}
}

// Kind returns the variant of n.
func (n Network) Kind() NetworkKind {
	return n.kind
}

// Expiration returns the signed URL lifetime. It is zero for public networks.
func (n Network) Expiration() time.Duration {
	return n.expiration
}

// ExpirationSeconds returns [Network.Expiration] in whole seconds.
func (n Network) ExpirationSeconds() int64 {
	return int64(n.expiration / time.Second)
}

// String returns the value sent to the pinning service in the "network"
// form field.
func (n Network) String() string {
	if n.kind == NetworkPrivate {
		return "private"
	}
	return "public"
}
