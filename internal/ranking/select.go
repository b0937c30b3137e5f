package ranking

import (
	"context"
	"fmt"

	"github.com/0xsashank/magicresume/internal/embedding"
)

// DefaultTopK is the number of experience points kept for prompt assembly.
// A smaller input set is returned whole, so callers never need to pad.
const DefaultTopK = 5

// SelectTopK returns the points most relevant to the job description,
// most-relevant first. The job description is embedded once and all points
// are embedded in a single batch call. At most min(k, len(points)) points
// are returned.
func SelectTopK(ctx context.Context, embedder embedding.Embedder, points []string, jobDescription string, k int) ([]string, error) {
	jobVecs, err := embedder.Embed(ctx, []string{jobDescription})
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}
	if len(jobVecs) != 1 {
		return nil, fmt.Errorf("expected 1 job description vector, got %d", len(jobVecs))
	}

	return TopKByVector(ctx, embedder, points, jobVecs[0], k)
}

// TopKByVector is SelectTopK for callers that already hold the job
// description vector, avoiding a second embedding call per request.
func TopKByVector(ctx context.Context, embedder embedding.Embedder, points []string, jobVec []float32, k int) ([]string, error) {
	if len(points) == 0 {
		return nil, nil
	}

	pointVecs, err := embedder.Embed(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("failed to embed experience points: %w", err)
	}

	ranked, err := Rank(jobVec, pointVecs)
	if err != nil {
		return nil, fmt.Errorf("failed to rank experience points: %w", err)
	}

	if k > len(ranked) {
		k = len(ranked)
	}
	selected := make([]string, 0, k)
	for _, r := range ranked[:k] {
		selected = append(selected, points[r.Index])
	}

	return selected, nil
}
