package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	claudeBaseURL      = "https://api.anthropic.com"
	claudeDefaultModel = "claude-sonnet-4-20250514"
	claudeAPIVersion   = "2023-06-01"

	hostedTimeout = 30 * time.Second
)

type Claude struct {
	apiKey  string
	client  *http.Client
	baseURL string
	model   string
}

func NewClaude(apiKey, model string) *Claude {
	if model == "" {
		model = claudeDefaultModel
	}
	return &Claude{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: hostedTimeout},
		baseURL: claudeBaseURL,
		model:   model,
	}
}

func (c *Claude) Name() string { return string(ProviderClaude) }

func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"max_tokens":  1024,
		"temperature": 0,
	}
	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": claudeAPIVersion,
	}

	return postJSON(ctx, c.client, c.baseURL+"/v1/messages", headers, body, extractClaude)
}

func extractClaude(raw []byte) (string, error) {
	// Minimal struct to pull out the content text.
	var resp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("response has no content blocks")
	}
	return resp.Content[0].Text, nil
}
