package adapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

func mapFetchError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	return &FetchError{
		StatusCode: resp.StatusCode(),
		Status:     reasonPhrase(resp),
	}
}

func mapUploadError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	return &UploadError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

func mapSignError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	return &SignError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

// reasonPhrase returns the status text sent by the server, falling back to
// the standard text for the code when the server sent none.
func reasonPhrase(resp *resty.Response) string {
	code := strconv.Itoa(resp.StatusCode())
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status(), code))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode())
	}
	return phrase
}
