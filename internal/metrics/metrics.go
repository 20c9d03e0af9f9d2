package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sketchart_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks vendor generation latency per provider and model.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sketchart_generate_duration_seconds",
		Help:    "Time spent waiting on image generation backends.",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 180},
	}, []string{"provider", "model"})

	// UploadBytes tracks the distribution of uploaded sketch sizes.
	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sketchart_upload_bytes",
		Help:    "Size of uploaded sketch files in bytes.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	// ProviderAvailable tracks whether each provider is usable.
	ProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sketchart_provider_available",
		Help: "Whether an image provider is available (1) or not (0).",
	}, []string{"provider"})
)
