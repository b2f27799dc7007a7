package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in   string
		want Provider
	}{
		{"claude", ProviderClaude},
		{"anthropic", ProviderClaude},
		{"Claude", ProviderClaude},
		{"ANTHROPIC", ProviderClaude},
		{"openai", ProviderOpenAI},
		{"chatgpt", ProviderOpenAI},
		{"gpt", ProviderOpenAI},
		{"GPT", ProviderOpenAI},
		{"ollama", ProviderOllama},
		{"local", ProviderOllama},
		{" ollama ", ProviderOllama},
		{"", ProviderUnknown},
		{"gemini", ProviderUnknown},
		{"claud", ProviderUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseProvider(tt.in), "input %q", tt.in)
	}
}
