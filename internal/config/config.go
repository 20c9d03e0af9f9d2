package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port           int    `yaml:"port"`
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	OpenAIModel    string `yaml:"openai_model"`
	GCPProject     string `yaml:"gcp_project"`
	GCPLocation    string `yaml:"gcp_location"`
	GeminiModel    string `yaml:"gemini_model"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"request_timeout_seconds"`
	MaxUploadMB    int    `yaml:"max_upload_mb"`
}

func defaults() Config {
	return Config{
		Port:           7860,
		OpenAIModel:    "gpt-image-1.5",
		GCPLocation:    "global",
		GeminiModel:    "gemini-3-pro-image-preview",
		TimeoutSeconds: 180,
		MaxUploadMB:    12,
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. The vendor credential variables keep
// their conventional names (OPENAI_API_KEY, GOOGLE_CLOUD_PROJECT); everything
// else uses the SKETCHART_ prefix. An empty path returns defaults + env.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("SKETCHART_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SKETCHART_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("SKETCHART_OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		cfg.GCPProject = v
	}
	if v := os.Getenv("GOOGLE_CLOUD_LOCATION"); v != "" {
		cfg.GCPLocation = v
	}
	if v := os.Getenv("SKETCHART_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("SKETCHART_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SKETCHART_TIMEOUT_SECONDS"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SKETCHART_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.TimeoutSeconds = t
	}
	if v := os.Getenv("SKETCHART_MAX_UPLOAD_MB"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SKETCHART_MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.MaxUploadMB = m
	}

	return cfg, nil
}
