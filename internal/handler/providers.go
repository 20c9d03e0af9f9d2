package handler

import (
	"encoding/json"
	"net/http"

	"github.com/simecek/detsky-den2026/internal/provider"
)

// Providers serves the registry enumeration used to populate the provider
// selection control.
func Providers(registry *provider.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(registry.List())
	}
}
