package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-i input document path
//	-k pinning service API key
//	-visibility public|private
//	-private-expiration signed URL lifetime in seconds
//	-delay pause between entries (e.g. "1s")
//	-upload-url upload endpoint
//	-sign-url signed URL endpoint
//	-request-timeout outbound request timeout (e.g. "30s")
//	-d database DSN
//	-a results server address in format [host]:[port]
//	-server-timeout results server read/write timeout
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("web3-uploader", flag.ContinueOnError)

	var serverAddress NetAddress
	var inputPath, apiKey, visibility string
	var privateExpiration int64
	var delay, requestTimeout, serverTimeout time.Duration
	var uploadURL, signURL string
	var databaseDSN, logLevel, jsonConfigPath string

	fs.StringVar(&inputPath, "i", "", "Input document path")
	fs.StringVar(&apiKey, "k", "", "Pinning service API key")
	fs.StringVar(&visibility, "visibility", "", "Upload visibility: public or private")
	fs.Int64Var(&privateExpiration, "private-expiration", 0, "Signed URL lifetime in seconds")
	fs.DurationVar(&delay, "delay", 0, "Pause between entries (e.g., 1s)")
	fs.StringVar(&uploadURL, "upload-url", "", "Upload endpoint")
	fs.StringVar(&signURL, "sign-url", "", "Signed URL endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.Var(&serverAddress, "a", "Results server address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Results server timeout (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:            apiKey,
			Visibility:        visibility,
			PrivateExpiration: privateExpiration,
			RateLimitDelay:    delay,
			InputFilePath:     inputPath,
			LogLevel:          logLevel,
		},
		Adapter: Adapter{
			UploadURL:      uploadURL,
			SignURL:        signURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
