package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeEnvelope writes a service response envelope at its own status.
func writeEnvelope[T any](w http.ResponseWriter, resp model.Response[T]) {
	writeJSON(w, resp.Status, resp)
}
