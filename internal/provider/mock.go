package provider

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"
)

// MockProvider returns a deterministic transformation of the sketch with a
// configurable delay. Used for development and testing without a real backend.
type MockProvider struct {
	Delay time.Duration
}

func (m *MockProvider) Descriptor() Descriptor {
	return Descriptor{
		Key:          "mock",
		Name:         "Mock (dev)",
		Description:  "Inverts the sketch colors locally, no network calls",
		DefaultModel: "mock-v1",
	}
}

func (m *MockProvider) GenerateFromSketch(ctx context.Context, sketch Image, style, prompt string) (Image, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Image{}, fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	src, _, err := image.Decode(bytes.NewReader(sketch.Data))
	if err != nil {
		return Image{}, &GenerationError{Provider: "mock", Model: "mock-v1", Reason: "sketch is not a decodable image", Err: err}
	}

	// Simple mock: invert every pixel so the result is visibly "generated".
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			out.Set(x, y, color.RGBA{
				R: uint8(255 - r>>8),
				G: uint8(255 - g>>8),
				B: uint8(255 - b>>8),
				A: uint8(a >> 8),
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return Image{}, fmt.Errorf("mock: encode result: %w", err)
	}

	return Image{Data: buf.Bytes(), MIMEType: "image/png"}, nil
}

func (m *MockProvider) Available() bool { return true }
