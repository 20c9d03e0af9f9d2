package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simecek/detsky-den2026/internal/config"
	"github.com/simecek/detsky-den2026/internal/provider"
	"github.com/simecek/detsky-den2026/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock provider instead of real image backends")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	registry := buildRegistry(cfg, *useMock)
	handler := server.SetupMux(registry, server.Options{
		APIKey:      cfg.APIKey,
		MaxUploadMB: cfg.MaxUploadMB,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	})

	if cfg.APIKey != "" {
		log.Println("auth: API key required (X-API-Key header)")
	} else {
		log.Println("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("sketchart listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

func buildRegistry(cfg config.Config, useMock bool) *provider.Registry {
	registry := provider.NewRegistry()

	if useMock {
		registry.Register("mock", &provider.MockProvider{Delay: 500 * time.Millisecond})
		log.Println("mode: mock provider enabled")
		return registry
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	registry.Register("openai", &provider.OpenAIProvider{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
		Client: &http.Client{Timeout: timeout},
	})
	if cfg.OpenAIAPIKey != "" {
		log.Printf("provider: openai enabled (model: %s)", cfg.OpenAIModel)
	} else {
		log.Println("provider: openai registered but not configured (set OPENAI_API_KEY)")
	}

	registry.Register("gemini", provider.NewGeminiProvider(cfg.GCPProject, cfg.GCPLocation, cfg.GeminiModel))
	if cfg.GCPProject != "" {
		log.Printf("provider: gemini enabled (project: %s, model: %s)", cfg.GCPProject, cfg.GeminiModel)
	} else {
		log.Println("provider: gemini registered but not configured (set GOOGLE_CLOUD_PROJECT)")
	}

	return registry
}
