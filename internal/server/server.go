package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simecek/detsky-den2026/internal/handler"
	"github.com/simecek/detsky-den2026/internal/middleware"
	"github.com/simecek/detsky-den2026/internal/provider"
	"github.com/simecek/detsky-den2026/internal/web"
)

// Options tunes the ambient middleware; zero values fall back to defaults.
type Options struct {
	APIKey      string
	MaxUploadMB int
	Timeout     time.Duration
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(registry *provider.Registry, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(registry))
	mux.HandleFunc("/api/providers", handler.Providers(registry))
	mux.HandleFunc("/api/styles", handler.Styles())
	mux.HandleFunc("/api/transform", handler.Transform(registry))
	mux.HandleFunc("/api/print-layout", handler.PrintLayout())
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", web.Handler())

	maxUpload := opts.MaxUploadMB
	if maxUpload <= 0 {
		maxUpload = 12
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 180 * time.Second
	}

	rl := middleware.NewRateLimiter(20, time.Minute)
	return middleware.Chain(mux, rl, opts.APIKey, int64(maxUpload)<<20, timeout)
}
