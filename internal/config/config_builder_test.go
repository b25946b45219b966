package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source is never
// overwritten by a later one, while zero fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{APIKey: "from-env"}},
		&StructuredConfig{App: App{APIKey: "from-flags", Visibility: "private"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.APIKey)
	assert.Equal(t, "private", cfg.App.Visibility)
}

func TestBuild_RejectsNegativeDelay(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{RateLimitDelay: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	clearEnvVars(t)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-k", "flag-key"}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.APIKey)
	assert.Equal(t, DefaultVisibility, cfg.App.Visibility)
	assert.Equal(t, int64(DefaultPrivateExpiration), cfg.App.PrivateExpiration)
	assert.Equal(t, DefaultRateLimitDelay, cfg.App.RateLimitDelay)
	assert.Equal(t, DefaultUploadURL, cfg.Adapter.UploadURL)
	assert.Equal(t, DefaultSignURL, cfg.Adapter.SignURL)
	assert.Equal(t, DefaultPublicGatewayURL, cfg.Adapter.PublicGatewayURL)
	assert.Equal(t, DefaultPrivateGatewayURL, cfg.Adapter.PrivateGatewayURL)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, time.Duration(0), cfg.Adapter.RequestTimeout)
}

// ── priority ─────────────────────────────────────────────────────────────────

// TestBuilder_Priority verifies env > flags > JSON > defaults.
func TestBuilder_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"pinata_api_key":     "json-key",
			"visibility":         "private",
			"private_expiration": 600,
			"input":              "json-input.json",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})
	setEnvVars(t, map[string]string{
		"APP_PINATA_API_KEY": "env-key",
		"CONFIG":             jsonPath,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-k", "flag-key", "-visibility", "public", "-d", "flag.db"}).
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.APIKey)
	assert.Equal(t, "public", cfg.App.Visibility)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(600), cfg.App.PrivateExpiration)
	assert.Equal(t, "json-input.json", cfg.App.InputFilePath)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_InvalidFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}
