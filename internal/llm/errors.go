package llm

import (
	"encoding/json"
	"fmt"
)

// ErrTransport indicates the request never produced a usable response:
// a network failure or a non-2xx HTTP status from the provider.
// StatusCode is 0 when the failure happened below the HTTP layer.
// Body carries the response body text for diagnostics.
type ErrTransport struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ErrTransport) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("question service returned HTTP %d: %s", e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("question service returned HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("question service unreachable: %v", e.Err)
	}
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrMalformed indicates the provider answered but the response was
// unusable: no message content in the envelope, content that is not
// valid JSON, or content failing the requested schema.
type ErrMalformed struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed LLM response: %v", e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// ErrMissingCredential indicates the selected provider has no API key
// configured. This is a startup error: callers abort rather than retry.
type ErrMissingCredential struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s is required for the %s provider", e.EnvVar, e.Provider)
}

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
