package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Client abstracts LLM providers for resume structuring. Implementations
// make a single blocking call per invocation; retries are the caller's
// responsibility (and deliberately absent from this pipeline).
type Client interface {
	ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error)
}

var (
	// ErrUnavailable covers network, auth, and provider-side failures.
	ErrUnavailable = errors.New("llm provider unavailable")
	// ErrMalformedOutput means the provider responded but not with usable JSON.
	ErrMalformedOutput = errors.New("llm output is not valid JSON")
)

// CleanContent normalizes raw model output into a JSON candidate: strips
// markdown code fences, then falls back to slicing the outermost braces.
// Returns ErrMalformedOutput when no valid JSON can be recovered.
func CleanContent(raw string) (json.RawMessage, error) {
	clean := stripFences(raw)
	if json.Valid([]byte(clean)) {
		return json.RawMessage(clean), nil
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start != -1 && end > start {
		candidate := clean[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, ErrMalformedOutput
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
