package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web3-uploader/internal/app"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
)

var errorStatusMap = map[error]int{
	store.ErrRunNotFound: http.StatusNotFound,

	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	store.ErrRunNotFound: app.MsgRunNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError replies with the status mapped from err. Internal details
// are never written to the body.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := app.MsgInternalServerError
	for target, m := range errorMessageMap {
		if errors.Is(err, target) {
			msg = m
			break
		}
	}
	if status == http.StatusServiceUnavailable {
		msg = http.StatusText(status)
	}

	utils.WriteError(w, msg, status)
}
