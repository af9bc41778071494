// Package rest holds the hand-written HTTP handlers for the four
// services. Handlers stay thin: decode, call the use case, encode.
package rest

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"error": message})
}
