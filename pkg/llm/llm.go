package llm

import (
	"context"
	"errors"
)

// LLM is the contract every backend implements: one prompt in, the raw
// generated text out. Implementations are stateless and safe for reuse.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Failure taxonomy. The CLI matches these with errors.Is and downgrades
// all of them to warnings; none is fatal to the surrounding command.
var (
	// ErrNotConfigured means no provider was selected at all (AI_PROVIDER unset).
	ErrNotConfigured = errors.New("no AI provider configured")

	// ErrUnknownProvider means the configured provider name matched no backend.
	ErrUnknownProvider = errors.New("unknown AI provider")

	// ErrMissingCredential means a hosted backend was selected without an API
	// key. Raised before any network call.
	ErrMissingCredential = errors.New("missing API key")

	// ErrBackendUnreachable means the local backend failed its liveness probe.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrRequestFailed covers the generation call itself: network errors,
	// non-2xx statuses, malformed JSON and missing response fields.
	ErrRequestFailed = errors.New("generation request failed")

	// ErrNoResult means the call succeeded but the model produced no text.
	ErrNoResult = errors.New("model returned no text")
)
