package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-web3-uploader/models"
)

var (
	ErrReadingInput  = errors.New("error reading input document")
	ErrDecodingInput = errors.New("error decoding input document")
)

// ReadInput loads the input document from path. "-" reads standard input.
func ReadInput(path string) (models.Input, error) {
	if path == "-" {
		return decodeInput(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Input{}, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}
	defer f.Close()

	return decodeInput(f)
}

func decodeInput(r io.Reader) (models.Input, error) {
	var input models.Input
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return models.Input{}, fmt.Errorf("%w: %w", ErrDecodingInput, err)
	}
	return input, nil
}
