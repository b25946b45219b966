package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-web3-uploader/internal/app"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listRuns handles GET /api/runs. Runs are returned newest first.
func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	runs, err := h.services.ResultService.ListRuns(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRuns").Msg("error listing runs")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, runs, http.StatusOK)
}

// getRun handles GET /api/runs/{runID}.
func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	runID, ok := runIDParam(w, r)
	if !ok {
		return
	}

	run, err := h.services.ResultService.GetRun(r.Context(), runID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRun").Str("run_id", runID).Msg("error getting run")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, run, http.StatusOK)
}

// getRunRecords handles GET /api/runs/{runID}/records. Records are returned
// in input order.
func (h *Handler) getRunRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	runID, ok := runIDParam(w, r)
	if !ok {
		return
	}

	records, err := h.services.ResultService.GetRunRecords(r.Context(), runID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRunRecords").Str("run_id", runID).Msg("error getting records")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func runIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	runID := strings.TrimSpace(chi.URLParam(r, "runID"))
	if runID == "" {
		logger.FromRequest(r).Warn().Err(ErrEmptyRunID).Msg("rejecting request")
		utils.WriteError(w, app.MsgNoRunIDProvided, http.StatusBadRequest)
		return "", false
	}
	return runID, true
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
