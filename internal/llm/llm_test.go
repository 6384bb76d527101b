package llm

import (
	"errors"
	"testing"
)

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain json", raw: `{"skills":["Go"]}`, want: `{"skills":["Go"]}`},
		{name: "fenced json", raw: "```json\n{\"skills\":[\"Go\"]}\n```", want: `{"skills":["Go"]}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose wrapped object", raw: `Here is the result: {"a":1} hope it helps`, want: `{"a":1}`},
		{name: "no json at all", raw: "sorry, I cannot do that", wantErr: true},
		{name: "truncated object", raw: `{"a":`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanContent(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedOutput) {
					t.Fatalf("expected ErrMalformedOutput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("CleanContent(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildPromptShape(t *testing.T) {
	messages := BuildPrompt("John Doe, Software Engineer")
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Fatalf("expected system message first, got %q", messages[0].Role)
	}
	if messages[1].Role != "user" {
		t.Fatalf("expected user message second, got %q", messages[1].Role)
	}
}
