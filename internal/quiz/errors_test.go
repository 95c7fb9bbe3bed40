package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/sciquiz/internal/llm"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "validation passes through verbatim",
			err:  &ValidationError{Validator: "structural", Message: "expected 4 options, got 3"},
			want: "expected 4 options, got 3",
		},
		{
			name: "transport with status",
			err:  &llm.ErrTransport{StatusCode: 503, Body: "overloaded"},
			want: "Question service error (HTTP 503). Try again.",
		},
		{
			name: "transport without status",
			err:  &llm.ErrTransport{Err: errors.New("dial tcp: connection refused")},
			want: "Network error. Check your connection and try again.",
		},
		{
			name: "malformed",
			err:  &llm.ErrMalformed{Content: json.RawMessage(`not json`), Err: errors.New("invalid character")},
			want: "The question service sent an unreadable reply. Try again.",
		},
		{
			name: "truncated",
			err:  &llm.ErrMaxTokensExceeded{Content: json.RawMessage(`{"question":"Wh`)},
			want: "The question service reply was cut short. Try again.",
		},
		{
			name: "wrapped errors unwrap",
			err:  fmt.Errorf("fetch question: %w", &llm.ErrTransport{StatusCode: 500}),
			want: "Question service error (HTTP 500). Try again.",
		},
		{
			name: "unknown falls back to Error()",
			err:  errors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}

	// The status code must survive into the transport message whatever
	// the exact wording.
	if msg := UserMessage(&llm.ErrTransport{StatusCode: 429}); !strings.Contains(msg, "429") {
		t.Errorf("transport message %q should carry the status code", msg)
	}
}
