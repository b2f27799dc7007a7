package llm

import "fmt"

// Options is the provider configuration resolved by pkg/config (or built
// directly in tests). Model and OllamaURL may be empty; backends fall back
// to their defaults.
type Options struct {
	Provider  string
	APIKey    string
	Model     string
	OllamaURL string
}

// New builds the backend selected by opts.Provider.
//
// It fails with ErrNotConfigured when no provider is set at all, with
// ErrUnknownProvider when the name matches no backend, and with
// ErrMissingCredential when a hosted backend has no API key. All of these
// are decided here, before any network call is made.
func New(opts Options) (LLM, error) {
	if opts.Provider == "" {
		return nil, ErrNotConfigured
	}

	switch ParseProvider(opts.Provider) {
	case ProviderClaude:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("%w for claude (set AI_API_KEY or ANTHROPIC_API_KEY)", ErrMissingCredential)
		}
		return NewClaude(opts.APIKey, opts.Model), nil

	case ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("%w for openai (set AI_API_KEY or OPENAI_API_KEY)", ErrMissingCredential)
		}
		return NewOpenAI(opts.APIKey, opts.Model), nil

	case ProviderOllama:
		return NewOllama(opts.OllamaURL, opts.Model), nil

	default:
		return nil, fmt.Errorf("%w: %q (supported: claude, openai, ollama)", ErrUnknownProvider, opts.Provider)
	}
}
