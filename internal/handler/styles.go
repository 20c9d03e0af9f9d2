package handler

import (
	"encoding/json"
	"net/http"

	"github.com/simecek/detsky-den2026/internal/style"
)

// Styles serves the fixed style list for the style dropdown.
func Styles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(style.List())
	}
}
