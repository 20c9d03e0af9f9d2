package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	openaiDefaultBaseURL = "https://api.openai.com"

	// OpenAIDefaultModel is the image model used when none is configured.
	OpenAIDefaultModel = "gpt-image-1.5"
	// OpenAIAltModel is the previous-generation fallback.
	OpenAIAltModel = "gpt-image-1"
)

// OpenAIProvider transforms sketches via the OpenAI image edit API
// (POST /v1/images/edits). Authentication is a bearer API key.
type OpenAIProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type openaiImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
}

type openaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAIProvider) Descriptor() Descriptor {
	model := o.Model
	if model == "" {
		model = OpenAIDefaultModel
	}
	return Descriptor{
		Key:          "openai",
		Name:         "OpenAI GPT-Image-1.5",
		Description:  "OpenAI's latest image generation model with excellent sketch interpretation",
		DefaultModel: model,
		AltModels:    []string{OpenAIAltModel},
	}
}

func (o *OpenAIProvider) GenerateFromSketch(ctx context.Context, sketch Image, style, prompt string) (Image, error) {
	if o.APIKey == "" {
		return Image{}, &ConfigError{Provider: "openai", Missing: "OPENAI_API_KEY"}
	}

	model := o.Model
	if model == "" {
		model = OpenAIDefaultModel
	}
	fullPrompt := BuildPrompt(style, prompt)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", "sketch.png")
	if err != nil {
		return Image{}, fmt.Errorf("openai: build form: %w", err)
	}
	if _, err := part.Write(sketch.Data); err != nil {
		return Image{}, fmt.Errorf("openai: build form: %w", err)
	}
	_ = writer.WriteField("model", model)
	_ = writer.WriteField("prompt", fullPrompt)
	_ = writer.WriteField("n", "1")
	_ = writer.WriteField("size", "1024x1024")
	if err := writer.Close(); err != nil {
		return Image{}, fmt.Errorf("openai: build form: %w", err)
	}

	baseURL := o.BaseURL
	if baseURL == "" {
		baseURL = openaiDefaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/v1/images/edits"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return Image{}, fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return Image{}, &GenerationError{Provider: "openai", Model: model, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp openaiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return Image{}, &GenerationError{
				Provider: "openai",
				Model:    model,
				Reason:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			}
		}
		return Image{}, &GenerationError{Provider: "openai", Model: model, Reason: errResp.Error.Message}
	}

	var imgResp openaiImageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<20)).Decode(&imgResp); err != nil {
		return Image{}, &GenerationError{Provider: "openai", Model: model, Reason: "malformed response", Err: err}
	}
	if len(imgResp.Data) == 0 || imgResp.Data[0].B64JSON == "" {
		return Image{}, &GenerationError{Provider: "openai", Model: model, Reason: "empty response, no image data"}
	}

	data, err := base64.StdEncoding.DecodeString(imgResp.Data[0].B64JSON)
	if err != nil {
		return Image{}, &GenerationError{Provider: "openai", Model: model, Reason: "invalid base64 image data", Err: err}
	}

	return Image{Data: data, MIMEType: "image/png"}, nil
}

func (o *OpenAIProvider) Available() bool {
	return o.APIKey != ""
}
