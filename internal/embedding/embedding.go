// Package embedding provides text embedding clients for semantic relevance ranking.
package embedding

import "context"

// Embedder maps text strings to fixed-dimensional dense vectors.
// Vectors from the same Embedder and model version are mutually comparable;
// vectors from different model versions are not.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}
