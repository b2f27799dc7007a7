package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotConfigured(t *testing.T) {
	backend, err := New(Options{})
	assert.Nil(t, backend)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewUnknownProvider(t *testing.T) {
	backend, err := New(Options{Provider: "gemini"})
	assert.Nil(t, backend)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "gemini")
}

func TestNewMissingCredential(t *testing.T) {
	for _, provider := range []string{"claude", "anthropic", "openai", "gpt", "chatgpt"} {
		backend, err := New(Options{Provider: provider})
		assert.Nil(t, backend, "provider %q", provider)
		assert.ErrorIs(t, err, ErrMissingCredential, "provider %q", provider)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
	}{
		{"claude", "claude"},
		{"anthropic", "claude"},
		{"openai", "openai"},
		{"gpt", "openai"},
		{"ollama", "ollama"},
		{"local", "ollama"},
	}

	for _, tt := range tests {
		backend, err := New(Options{Provider: tt.provider, APIKey: "test-key"})
		require.NoError(t, err, "provider %q", tt.provider)
		assert.Equal(t, tt.wantName, backend.Name(), "provider %q", tt.provider)
	}
}

func TestNewOllamaNeedsNoKey(t *testing.T) {
	backend, err := New(Options{Provider: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", backend.Name())
}
