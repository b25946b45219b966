package config

import "time"

// Default endpoint and gateway values of the Pinata v3 API.
const (
	DefaultUploadURL         = "https://uploads.pinata.cloud/v3/files"
	DefaultSignURL           = "https://api.pinata.cloud/v3/files/private/download_link"
	DefaultPublicGatewayURL  = "https://gateway.pinata.cloud/ipfs/"
	DefaultPrivateGatewayURL = "https://os.mypinata.cloud/files/"

	DefaultVisibility        = "public"
	DefaultPrivateExpiration = 86400
	DefaultRateLimitDelay    = time.Second
	DefaultDSN               = "web3-uploader.db"
	DefaultHTTPAddress       = "localhost:8081"
	DefaultServerTimeout     = 30 * time.Second
	DefaultLogLevel          = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Visibility:        DefaultVisibility,
			PrivateExpiration: DefaultPrivateExpiration,
			RateLimitDelay:    DefaultRateLimitDelay,
			LogLevel:          DefaultLogLevel,
		},
		Adapter: Adapter{
			UploadURL:         DefaultUploadURL,
			SignURL:           DefaultSignURL,
			PublicGatewayURL:  DefaultPublicGatewayURL,
			PrivateGatewayURL: DefaultPrivateGatewayURL,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
	}
}
