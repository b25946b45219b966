package service

import "errors"

// Preconditions of a batch run. Always returned wrapped in a [*ConfigError].
var (
	ErrNoURLsProvided = errors.New("No URLs provided")
	ErrAPIKeyRequired = errors.New("Pinata API Key is required")
)

// ConfigError reports a batch that cannot start. Nothing is processed and
// nothing is written when it is returned.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
