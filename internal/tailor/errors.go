package tailor

import (
	"fmt"

	"github.com/0xsashank/magicresume/internal/corpus"
)

// ValidationError rejects a request before any external call is made.
// Message is the full user-facing text.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerationCallError marks a single failed generation call. It is caught
// per variant and rendered into that variant's output slot only.
type GenerationCallError struct {
	Tone  corpus.Tone
	Cause error
}

func (e *GenerationCallError) Error() string {
	return fmt.Sprintf("%s variant generation failed: %v", e.Tone, e.Cause)
}

func (e *GenerationCallError) Unwrap() error {
	return e.Cause
}
