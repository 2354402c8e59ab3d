package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// jsonErrorDetails writes a JSON error response with a details field,
// included only when includeDetails is set (development mode).
func jsonErrorDetails(w http.ResponseWriter, status int, message, details string, includeDetails bool) {
	resp := map[string]string{"error": message}
	if includeDetails {
		resp["details"] = details
	}
	jsonResponse(w, status, resp)
}
