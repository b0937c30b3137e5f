package embedding

import "fmt"

// UnavailableError indicates the embedding backend could not be reached or
// returned an unusable response. Relevance ranking is impossible without
// embeddings, so callers treat this as fatal for the request.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding service unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding service unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
