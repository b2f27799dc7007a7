// Package config resolves provider settings from the environment.
//
// Recognized variables:
//
//	AI_PROVIDER  backend to use: claude | openai | ollama (plus aliases)
//	AI_API_KEY   API key for hosted backends; falls back to
//	             ANTHROPIC_API_KEY or OPENAI_API_KEY per provider
//	AI_MODEL     model override; each backend has its own default
//	OLLAMA_URL   local backend endpoint, default http://localhost:11434
package config

import (
	"github.com/spf13/viper"

	"github.com/kubecare/kubectl-diagnose/pkg/llm"
)

// Load reads the environment once and returns resolved backend options.
// It never fails: validation (unset provider, missing key) belongs to
// llm.New so that tests and callers see one error taxonomy.
func Load() llm.Options {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("OLLAMA_URL", llm.DefaultOllamaURL)

	opts := llm.Options{
		Provider:  v.GetString("AI_PROVIDER"),
		APIKey:    v.GetString("AI_API_KEY"),
		Model:     v.GetString("AI_MODEL"),
		OllamaURL: v.GetString("OLLAMA_URL"),
	}

	if opts.APIKey == "" {
		switch llm.ParseProvider(opts.Provider) {
		case llm.ProviderClaude:
			opts.APIKey = v.GetString("ANTHROPIC_API_KEY")
		case llm.ProviderOpenAI:
			opts.APIKey = v.GetString("OPENAI_API_KEY")
		}
	}

	return opts
}
