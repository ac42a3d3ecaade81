package middleware

import "net/http"

// writeError sends the same {"error": "..."} body the REST handlers use.
// message must not need JSON escaping.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}
