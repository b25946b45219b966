// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PrivateExpiration < 0 || cfg.App.RateLimitDelay < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validateUploader checks the settings the batch uploader depends on. The API
// key is not checked here: it may come from the input document, and the batch
// driver reports it missing.
func (cfg *StructuredConfig) validateUploader() error {
	if cfg.App.InputFilePath == "" {
		return ErrNoInputFile
	}

	for _, raw := range []string{cfg.Adapter.UploadURL, cfg.Adapter.SignURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Adapter.PublicGatewayURL == "" || cfg.Adapter.PrivateGatewayURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateResults() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
