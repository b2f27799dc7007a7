package llm

import "strings"

// Provider identifies one of the supported backends.
type Provider string

const (
	ProviderClaude  Provider = "claude"
	ProviderOpenAI  Provider = "openai"
	ProviderOllama  Provider = "ollama"
	ProviderUnknown Provider = ""
)

// ParseProvider normalizes a user-supplied provider name to its canonical
// backend. Matching is case-insensitive and alias-tolerant; anything
// unrecognized maps to ProviderUnknown rather than being passed through.
func ParseProvider(name string) Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "claude", "anthropic":
		return ProviderClaude
	case "openai", "chatgpt", "gpt":
		return ProviderOpenAI
	case "ollama", "local":
		return ProviderOllama
	default:
		return ProviderUnknown
	}
}

// Providers returns the canonical backends, for help text and listings.
func Providers() []Provider {
	return []Provider{ProviderClaude, ProviderOpenAI, ProviderOllama}
}
