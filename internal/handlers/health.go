package handlers

import "net/http"

// healthResponse is the static body of GET /healthz.
type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health returns the liveness handler. It deliberately does not call
// auth.test per request; the upstream dependency is checked once at startup.
func Health(service, version string) http.HandlerFunc {
	body := healthResponse{OK: true, Service: service, Version: version}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}
}
