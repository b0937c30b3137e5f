package llm

import "fmt"

// ConfigurationError indicates the client cannot be used at all, e.g. a
// missing credential. It is detectable before any generation call is made
// and is fatal for the whole request.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// GenerationError wraps a failed generation call.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation call failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
