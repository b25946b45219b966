package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validUploaderConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.InputFilePath = "input.json"
	return cfg
}

func TestValidateUploader(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing api key is allowed", mutate: func(cfg *StructuredConfig) { cfg.App.APIKey = "" }},
		{name: "no input", mutate: func(cfg *StructuredConfig) { cfg.App.InputFilePath = "" }, wantErr: ErrNoInputFile},
		{name: "relative upload url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.UploadURL = "/v3/files" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty sign url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.SignURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty gateway", mutate: func(cfg *StructuredConfig) { cfg.Adapter.PublicGatewayURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validUploaderConfig()
			tt.mutate(cfg)

			err := cfg.validateUploader()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateResults(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validateResults())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validateResults(), ErrInvalidServerConfigs)

	cfg = defaultConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validateResults(), ErrInvalidStorageConfigs)
}

func TestValidate_UnknownVisibilityIsAccepted(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Visibility = "restricted"
	assert.NoError(t, cfg.validate())
}
