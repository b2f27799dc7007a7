package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultOllamaURL is where a locally-run Ollama listens.
	DefaultOllamaURL = "http://localhost:11434"

	ollamaDefaultModel = "llama3.2"

	ollamaTimeout = 60 * time.Second
	probeTimeout  = 2 * time.Second
)

// Ollama talks to a local Ollama server. Unlike the hosted backends it
// needs no credentials, but the server may simply not be running, so every
// Generate is preceded by a short liveness probe against /api/tags.
type Ollama struct {
	client  *http.Client
	probe   *http.Client
	baseURL string
	model   string
}

func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = ollamaDefaultModel
	}
	return &Ollama{
		client:  &http.Client{Timeout: ollamaTimeout},
		probe:   &http.Client{Timeout: probeTimeout},
		baseURL: baseURL,
		model:   model,
	}
}

func (o *Ollama) Name() string { return string(ProviderOllama) }

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	if err := o.checkAlive(ctx); err != nil {
		return "", err
	}

	body := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
	}

	return postJSON(ctx, o.client, o.baseURL+"/api/generate", nil, body, extractOllama)
}

// checkAlive fails fast when the server is down instead of hanging for the
// full generation timeout on a connection that will never answer.
func (o *Ollama) checkAlive(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	resp, err := o.probe.Do(req)
	if err != nil {
		return fmt.Errorf("%w at %s (start it with 'ollama serve'): %v", ErrBackendUnreachable, o.baseURL, err)
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w at %s: status %d", ErrBackendUnreachable, o.baseURL, resp.StatusCode)
	}
	return nil
}

func extractOllama(raw []byte) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
