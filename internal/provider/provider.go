package provider

import "context"

// Provider defines the contract for sketch-to-image backends.
type Provider interface {
	// GenerateFromSketch submits the sketch and a style-derived prompt to the
	// backend and returns exactly one generated image. The call is synchronous
	// and may block for tens of seconds; cancellation happens via ctx.
	GenerateFromSketch(ctx context.Context, sketch Image, style, prompt string) (Image, error)
	Descriptor() Descriptor
	Available() bool
}

// Image is an in-memory raster image exchanged with a backend.
type Image struct {
	Data     []byte
	MIMEType string
}

// Descriptor is the static metadata attached to a provider.
// It is exposed via GET /api/providers.
type Descriptor struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DefaultModel string   `json:"default_model"`
	AltModels    []string `json:"alt_models,omitempty"`
}
