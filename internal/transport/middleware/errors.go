package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the JSON error body shared with the REST handlers.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code}) //nolint:errcheck
}
