package handler

import (
	"encoding/json"
	"net/http"

	"github.com/simecek/detsky-den2026/internal/metrics"
	"github.com/simecek/detsky-den2026/internal/provider"
)

type providerStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status    string                    `json:"status"`
	Providers map[string]providerStatus `json:"providers"`
}

func Health(registry *provider.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]providerStatus, registry.Len())
		for _, desc := range registry.List() {
			p, err := registry.Get(desc.Key)
			if err != nil {
				continue
			}
			s := providerStatus{Available: p.Available()}
			if !s.Available {
				s.Reason = unavailableReason(p)
			}
			gauge := 0.0
			if s.Available {
				gauge = 1.0
			}
			metrics.ProviderAvailable.WithLabelValues(desc.Key).Set(gauge)
			statuses[desc.Key] = s
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:    "ok",
			Providers: statuses,
		})
	}
}

func unavailableReason(p provider.Provider) string {
	switch p.(type) {
	case *provider.OpenAIProvider:
		return "no API key"
	case *provider.GeminiProvider:
		return "no GCP project"
	default:
		return "unavailable"
	}
}
