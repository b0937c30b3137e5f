package ranking

import "fmt"

// ComputationError indicates a similarity score could not be computed,
// typically because a vector has zero magnitude or dimensions differ.
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("similarity computation error: %s", e.Message)
}
