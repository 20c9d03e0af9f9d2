// Command benchmark exercises a running sketchart instance: it posts a
// synthetic sketch to /api/transform repeatedly and reports latency.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

type providerInfo struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	DefaultModel string `json:"default_model"`
}

type transformResponse struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Image     string `json:"image"`
}

type result struct {
	Provider  string
	Style     string
	Run       int
	ElapsedMs int64
	WallMs    int64
	OutBytes  int
	Error     string
}

func main() {
	url := flag.String("url", "http://localhost:7860", "API base URL")
	apiKey := flag.String("api-key", "", "API key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per style")
	providerKey := flag.String("provider", "", "Provider key to use (default: first available)")
	styleList := flag.String("styles", "watercolor painting,cartoon/animated", "Comma-separated style keys")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 300 * time.Second}

	key := *providerKey
	if key == "" {
		key = discoverProvider(client, baseURL, *apiKey)
	}

	sketch := testSketch()
	styles := strings.Split(*styleList, ",")

	fmt.Printf("Benchmarking %s with provider %s (%d runs per style)\n", baseURL, key, *runs)

	var results []result
	var failures int
	for _, style := range styles {
		style = strings.TrimSpace(style)
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  %s (run %d/%d)...", style, run, *runs)
			r := benchmark(client, baseURL, *apiKey, key, style, sketch, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, key); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func discoverProvider(client *http.Client, baseURL, apiKey string) string {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/providers", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating request: %v\n", err)
		os.Exit(1)
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching providers: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Providers endpoint returned %d: %s\n", resp.StatusCode, body)
		os.Exit(1)
	}

	var providers []providerInfo
	if err := json.NewDecoder(resp.Body).Decode(&providers); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding providers: %v\n", err)
		os.Exit(1)
	}
	if len(providers) == 0 {
		fmt.Fprintln(os.Stderr, "No providers available")
		os.Exit(1)
	}
	return providers[0].Key
}

func benchmark(client *http.Client, baseURL, apiKey, providerKey, style string, sketch []byte, run int) result {
	r := result{Provider: providerKey, Style: style, Run: run}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("sketch", "sketch.png")
	if err != nil {
		r.Error = err.Error()
		return r
	}
	part.Write(sketch)
	writer.WriteField("provider", providerKey)
	writer.WriteField("style", style)
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/transform", &buf)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	start := time.Now()
	resp, err := client.Do(req)
	r.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.Error = fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return r
	}

	var tResp transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&tResp); err != nil {
		r.Error = err.Error()
		return r
	}
	r.ElapsedMs = tResp.ElapsedMs
	r.OutBytes = len(tResp.Image)
	return r
}

func printTable(results []result) {
	fmt.Printf("%-28s %4s %10s %10s %10s\n", "STYLE", "RUN", "GEN MS", "WALL MS", "OUT B64")
	var sum, n int64
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%-28s %4d %10s %10d %10s\n", r.Style, r.Run, "ERR", r.WallMs, "-")
			continue
		}
		fmt.Printf("%-28s %4d %10d %10d %10d\n", r.Style, r.Run, r.ElapsedMs, r.WallMs, r.OutBytes)
		sum += r.ElapsedMs
		n++
	}
	if n > 0 {
		fmt.Printf("\nMean generation time: %dms over %d successful runs\n", sum/n, n)
	}
}

func writeJSON(path string, results []result, baseURL, providerKey string) error {
	out := struct {
		BaseURL  string    `json:"base_url"`
		Provider string    `json:"provider"`
		When     time.Time `json:"when"`
		Results  []result  `json:"results"`
	}{baseURL, providerKey, time.Now(), results}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
