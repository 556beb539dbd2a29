// Package httpserver builds the HTTP server fronting the inheritance API.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server with timeouts sized for this workload: calculation
// responses are small JSON payloads produced by a CPU-bound engine, so slow
// writes indicate a stuck client, not a slow computation.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
