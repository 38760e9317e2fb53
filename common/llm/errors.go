package llm

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrServiceUnavailable means the generation service could not be reached:
	// connection refused, DNS failure, timeout or a cancelled context.
	ErrServiceUnavailable = errors.New("generation service unavailable")
	// ErrGenerationFailed means the service answered but produced no usable text.
	ErrGenerationFailed = errors.New("generation failed")
)

// fallbackUserMessage is shown when the failure did not come from this package.
const fallbackUserMessage = "Failed to generate report"

// Error is returned by Client for every failed call. Kind is one of the
// sentinels above, so callers can branch with errors.Is.
type Error struct {
	Kind       error
	BaseURL    string
	Model      string
	StatusCode int    // zero for transport failures
	Status     string // e.g. "503 Service Unavailable"
	Detail     string // the service's own error message, when it sent one
	Err        error
}

func (e *Error) Error() string {
	var msg string
	if errors.Is(e.Kind, ErrServiceUnavailable) {
		msg = fmt.Sprintf("generation service unavailable at %s: make sure Ollama is running with the %s model loaded", e.BaseURL, e.Model)
	} else {
		msg = fmt.Sprintf("ollama api error: %s", e.Status)
		if e.Detail != "" {
			msg += " (" + e.Detail + ")"
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UserMessage is the single message shown to people for any generation
// failure. Unavailable and failed calls read the same.
func (e *Error) UserMessage() string {
	return fmt.Sprintf("Failed to generate report. Make sure Ollama is running on %s with the %s model.", hostOf(e.BaseURL), e.Model)
}

// UserMessage returns the user-facing message for err.
func UserMessage(err error) string {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.UserMessage()
	}
	return fallbackUserMessage
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}
