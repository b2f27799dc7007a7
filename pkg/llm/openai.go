package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	openAIBaseURL      = "https://api.openai.com"
	openAIDefaultModel = "gpt-4o"
)

type OpenAI struct {
	apiKey  string
	client  *http.Client
	baseURL string
	model   string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAI{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: hostedTimeout},
		baseURL: openAIBaseURL,
		model:   model,
	}
}

func (o *OpenAI) Name() string { return string(ProviderOpenAI) }

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"temperature": 0,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}

	return postJSON(ctx, o.client, o.baseURL+"/v1/chat/completions", headers, body, extractOpenAI)
}

func extractOpenAI(raw []byte) (string, error) {
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
