package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// All three backends make the same call: marshal a body, POST it, check the
// status, pull one text field out of the JSON reply. postJSON is that call
// once; backends differ only in endpoint, headers, body and extractor.
//
// Network errors, non-2xx statuses, malformed JSON and a missing text field
// all wrap ErrRequestFailed. A well-formed reply with empty text wraps
// ErrNoResult. On success the text is returned verbatim.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body any, extract func([]byte) (string, error)) (string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, truncate(respBytes, 512))
	}

	text, err := extract(respBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoResult
	}
	return text, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
