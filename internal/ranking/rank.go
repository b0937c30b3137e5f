// Package ranking provides cosine-similarity ranking of embedded texts
// against an embedded query.
package ranking

import (
	"fmt"
	"math"
	"sort"
)

// Ranked pairs a candidate's original index with its similarity score.
type Ranked struct {
	Index int
	Score float64
}

// Rank orders candidates by descending cosine similarity to the query.
// Ties preserve original index order. It has no side effects.
func Rank(query []float32, candidates [][]float32) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(candidates))
	for i, candidate := range candidates {
		score, err := Cosine(query, candidate)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		ranked = append(ranked, Ranked{Index: i, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

// Cosine computes the cosine similarity between two vectors.
// The result is in [-1, 1]. Zero-magnitude vectors and dimension
// mismatches are rejected with a ComputationError.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &ComputationError{Message: fmt.Sprintf("dimension mismatch: %d vs %d", len(a), len(b))}
	}
	if len(a) == 0 {
		return 0, &ComputationError{Message: "empty vector"}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, &ComputationError{Message: "zero-magnitude vector"}
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
