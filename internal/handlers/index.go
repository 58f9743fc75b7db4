package handlers

import (
	_ "embed"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
)

//go:embed views/index.html
var indexPage []byte

// NewIndexHandler returns an HTTP handler serving the landing page.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(indexPage); err != nil {
			logger.Log.Errorw("failed to write landing page", "error", err)
		}
	}
}
