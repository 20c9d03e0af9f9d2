package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simecek/detsky-den2026/internal/imaging"
	"github.com/simecek/detsky-den2026/internal/metrics"
	"github.com/simecek/detsky-den2026/internal/provider"
	"github.com/simecek/detsky-den2026/internal/style"
)

// memory cap for multipart parsing; larger parts spill to temp files
const multipartMemory = 4 << 20

type transformResponse struct {
	Image     string `json:"image"` // base64-encoded
	MIMEType  string `json:"mime_type"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Transform handles POST /api/transform: multipart form with a "sketch" file,
// a "provider" key, a "style" key, and an optional "prompt". The selected
// provider is invoked synchronously; its errors are surfaced to the client,
// never fatal to the process.
func Transform(registry *provider.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "sketch too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		file, header, err := r.FormFile("sketch")
		if err != nil {
			writeError(w, http.StatusBadRequest, "sketch file is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("read sketch %q: %v", header.Filename, err))
			return
		}
		metrics.UploadBytes.Observe(float64(len(data)))

		styleKey := r.FormValue("style")
		if styleKey == "" {
			writeError(w, http.StatusBadRequest, "style is required")
			return
		}
		if !style.Valid(styleKey) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown style: %s", styleKey))
			return
		}

		providerKey := r.FormValue("provider")
		if providerKey == "" {
			writeError(w, http.StatusBadRequest, "provider is required")
			return
		}

		p, err := registry.Get(providerKey)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		normalized, err := imaging.Normalize(data)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("sketch is not a supported image: %v", err))
			return
		}
		sketch := provider.Image{Data: normalized, MIMEType: "image/png"}

		desc := p.Descriptor()
		start := time.Now()
		result, err := p.GenerateFromSketch(r.Context(), sketch, styleKey, r.FormValue("prompt"))
		elapsed := time.Since(start)

		if err != nil {
			if provider.IsConfigError(err) {
				writeError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		metrics.GenerateDuration.WithLabelValues(desc.Key, desc.DefaultModel).Observe(elapsed.Seconds())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transformResponse{
			Image:     base64.StdEncoding.EncodeToString(result.Data),
			MIMEType:  result.MIMEType,
			Provider:  desc.Key,
			Model:     desc.DefaultModel,
			ElapsedMs: elapsed.Milliseconds(),
		})
	}
}
