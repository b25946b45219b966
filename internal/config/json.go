package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		APIKey            string   `json:"pinata_api_key"`
		Visibility        string   `json:"visibility"`
		PrivateExpiration int64    `json:"private_expiration"`
		RateLimitDelay    Duration `json:"rate_limit_delay"`
		InputFilePath     string   `json:"input"`
		LogLevel          string   `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		UploadURL         string   `json:"upload_url"`
		SignURL           string   `json:"sign_url"`
		PublicGatewayURL  string   `json:"public_gateway_url"`
		PrivateGatewayURL string   `json:"private_gateway_url"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:            jsonCfg.App.APIKey,
			Visibility:        jsonCfg.App.Visibility,
			PrivateExpiration: jsonCfg.App.PrivateExpiration,
			RateLimitDelay:    time.Duration(jsonCfg.App.RateLimitDelay),
			InputFilePath:     jsonCfg.App.InputFilePath,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			UploadURL:         jsonCfg.Adapter.UploadURL,
			SignURL:           jsonCfg.Adapter.SignURL,
			PublicGatewayURL:  jsonCfg.Adapter.PublicGatewayURL,
			PrivateGatewayURL: jsonCfg.Adapter.PrivateGatewayURL,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
