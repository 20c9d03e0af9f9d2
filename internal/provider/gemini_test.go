package provider

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiMissingProjectIsConfigError(t *testing.T) {
	g := NewGeminiProvider("", "", "")

	_, err := g.GenerateFromSketch(context.Background(), Image{Data: tinyPNG, MIMEType: "image/png"}, "anime/manga", "")
	if err == nil {
		t.Fatal("expected error for missing project, got nil")
	}
	if !IsConfigError(err) {
		t.Fatalf("error %v is not a ConfigError", err)
	}
	if !strings.Contains(err.Error(), "GOOGLE_CLOUD_PROJECT") {
		t.Errorf("error %q does not tell the user which variable to set", err.Error())
	}
	if g.client != nil {
		t.Error("client was constructed despite missing project")
	}
}

func TestGeminiDescriptorDefaults(t *testing.T) {
	g := NewGeminiProvider("my-project", "", "")
	d := g.Descriptor()

	if d.Key != "gemini" {
		t.Errorf("key: got %q", d.Key)
	}
	if d.DefaultModel != "gemini-3-pro-image-preview" {
		t.Errorf("default model: got %q, want gemini-3-pro-image-preview", d.DefaultModel)
	}
	if len(d.AltModels) != 1 || d.AltModels[0] != "gemini-2.5-flash-image" {
		t.Errorf("alt models: got %v", d.AltModels)
	}
	if g.Location != "global" {
		t.Errorf("location default: got %q, want global", g.Location)
	}
}

func TestGeminiDescriptorConfiguredModel(t *testing.T) {
	g := NewGeminiProvider("my-project", "europe-west4", GeminiFastModel)
	if got := g.Descriptor().DefaultModel; got != GeminiFastModel {
		t.Errorf("configured model: got %q, want %q", got, GeminiFastModel)
	}
}

func TestGeminiAvailable(t *testing.T) {
	if !NewGeminiProvider("my-project", "", "").Available() {
		t.Error("expected available with project")
	}
	if NewGeminiProvider("", "", "").Available() {
		t.Error("expected unavailable without project")
	}
}

func TestParseGeminiResultImage(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Here is your picture."},
						{InlineData: &genai.Blob{Data: []byte("png bytes"), MIMEType: "image/png"}},
					},
				},
			},
		},
	}

	img, err := parseGeminiResult(resp, GeminiDefaultModel)
	if err != nil {
		t.Fatalf("parseGeminiResult: %v", err)
	}
	if string(img.Data) != "png bytes" {
		t.Error("image data mismatch")
	}
	if img.MIMEType != "image/png" {
		t.Errorf("mime: got %q", img.MIMEType)
	}
}

func TestParseGeminiResultNoImage(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"text only", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "I cannot draw that."}}}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGeminiResult(tt.resp, GeminiDefaultModel)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsGenerationError(err) {
				t.Errorf("error %v is not a GenerationError", err)
			}
		})
	}
}

func TestVendorReasonPlainError(t *testing.T) {
	err := context.DeadlineExceeded
	if got := vendorReason(err); got != err.Error() {
		t.Errorf("vendorReason: got %q, want %q", got, err.Error())
	}
}

func TestVendorReasonAPIError(t *testing.T) {
	apiErr := genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Quota exceeded for model."}
	if got := vendorReason(apiErr); got != "Quota exceeded for model." {
		t.Errorf("vendorReason: got %q", got)
	}
}
