package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
)

// writeJSON writes v as a JSON body with status 200.
// Failures are signalled in the body, never through the status code.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, models.ErrorResponse{Error: msg})
}
