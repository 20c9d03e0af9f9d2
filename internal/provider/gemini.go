package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const (
	// GeminiDefaultModel is the high-fidelity image model.
	GeminiDefaultModel = "gemini-3-pro-image-preview"
	// GeminiFastModel is the faster, cheaper variant.
	GeminiFastModel = "gemini-2.5-flash-image"

	geminiDefaultLocation = "global"
)

// GeminiProvider transforms sketches via Gemini on Vertex AI. Authentication
// uses ambient application-default credentials plus a GCP project id; there is
// no API key to hold. The SDK client is created on first use so that a missing
// project surfaces as a ConfigError on the request path, like the other
// providers, instead of killing startup.
type GeminiProvider struct {
	Project  string
	Location string
	Model    string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiProvider builds a Vertex AI backed provider. Empty location and
// model fall back to "global" and the default image model.
func NewGeminiProvider(project, location, model string) *GeminiProvider {
	if location == "" {
		location = geminiDefaultLocation
	}
	if model == "" {
		model = GeminiDefaultModel
	}
	return &GeminiProvider{
		Project:  project,
		Location: location,
		Model:    model,
	}
}

func (g *GeminiProvider) Descriptor() Descriptor {
	model := g.Model
	if model == "" {
		model = GeminiDefaultModel
	}
	return Descriptor{
		Key:          "gemini",
		Name:         "Gemini 3 Pro Image (Vertex AI)",
		Description:  "Google's Gemini model with Nano Banana image generation via Vertex AI",
		DefaultModel: model,
		AltModels:    []string{GeminiFastModel},
	}
}

func (g *GeminiProvider) GenerateFromSketch(ctx context.Context, sketch Image, style, prompt string) (Image, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return Image{}, err
	}

	model := g.Descriptor().DefaultModel
	fullPrompt := BuildPrompt(style, prompt)

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						Data:     sketch.Data,
						MIMEType: sketch.MIMEType,
					},
				},
				{Text: fullPrompt},
			},
		},
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return Image{}, &GenerationError{Provider: "gemini", Model: model, Reason: vendorReason(err), Err: err}
	}

	return parseGeminiResult(result, model)
}

func (g *GeminiProvider) Available() bool {
	return g.Project != ""
}

// ensureClient lazily constructs the genai client. The project check happens
// first, before any credential or network activity.
func (g *GeminiProvider) ensureClient(ctx context.Context) (*genai.Client, error) {
	if g.Project == "" {
		return nil, &ConfigError{Provider: "gemini", Missing: "GOOGLE_CLOUD_PROJECT"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  g.Project,
		Location: g.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	g.client = client
	return client, nil
}

// parseGeminiResult extracts the first inline image from a Gemini response.
// A response without image data is a generation failure, not a partial result.
func parseGeminiResult(result *genai.GenerateContentResponse, model string) (Image, error) {
	if result == nil || len(result.Candidates) == 0 {
		return Image{}, &GenerationError{Provider: "gemini", Model: model, Reason: "empty response from model"}
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != nil {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return Image{Data: part.InlineData.Data, MIMEType: mime}, nil
			}
		}
	}

	return Image{}, &GenerationError{Provider: "gemini", Model: model, Reason: "no image was generated in the response"}
}

// vendorReason pulls the API error message out of a genai error so the UI can
// show the vendor's own wording (quota, content policy, auth).
func vendorReason(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Status
	}
	return err.Error()
}
