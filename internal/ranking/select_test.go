package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xsashank/magicresume/internal/embedding"
)

// fakeEmbedder returns fixed vectors per text, simulating a deterministic
// embedding backend.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   [][]string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := f.vectors[text]
		if !ok {
			vec = []float32{1, 1, 1}
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Close() error { return nil }

func newSelectEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: map[string][]float32{
		"job":     {1, 0, 0},
		"exact":   {1, 0, 0},
		"close":   {1, 0.2, 0},
		"farther": {1, 1, 0},
		"far":     {0, 1, 0},
		"away":    {0, 1, 1},
		"distant": {0, 0, 1},
	}}
}

func TestSelectTopK_MostRelevantFirst(t *testing.T) {
	embedder := newSelectEmbedder()
	points := []string{"far", "exact", "distant", "close", "away", "farther"}

	selected, err := SelectTopK(context.Background(), embedder, points, "job", DefaultTopK)
	require.NoError(t, err)
	require.Len(t, selected, DefaultTopK)

	// The three zero-score points tie and keep their original input order.
	assert.Equal(t, []string{"exact", "close", "farther", "far", "distant"}, selected)

	// Job description embedded once as a single-element batch, then all
	// points in one batch.
	require.Len(t, embedder.calls, 2)
	assert.Equal(t, []string{"job"}, embedder.calls[0])
	assert.Equal(t, points, embedder.calls[1])
}

func TestSelectTopK_FewerPointsThanK(t *testing.T) {
	embedder := newSelectEmbedder()
	points := []string{"far", "exact"}

	selected, err := SelectTopK(context.Background(), embedder, points, "job", DefaultTopK)
	require.NoError(t, err)

	assert.Equal(t, []string{"exact", "far"}, selected)
}

func TestSelectTopK_SubsetWithoutDuplicates(t *testing.T) {
	embedder := newSelectEmbedder()
	points := []string{"exact", "close", "farther", "far", "away", "distant"}

	selected, err := SelectTopK(context.Background(), embedder, points, "job", 4)
	require.NoError(t, err)
	require.Len(t, selected, 4)

	seen := make(map[string]bool)
	input := make(map[string]bool)
	for _, p := range points {
		input[p] = true
	}
	for _, p := range selected {
		assert.True(t, input[p], "selected point %q not in input", p)
		assert.False(t, seen[p], "duplicate point %q", p)
		seen[p] = true
	}
}

func TestSelectTopK_Idempotent(t *testing.T) {
	points := []string{"far", "exact", "close", "away"}

	first, err := SelectTopK(context.Background(), newSelectEmbedder(), points, "job", DefaultTopK)
	require.NoError(t, err)
	second, err := SelectTopK(context.Background(), newSelectEmbedder(), points, "job", DefaultTopK)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectTopK_EmbeddingUnavailable(t *testing.T) {
	embedder := &fakeEmbedder{err: &embedding.UnavailableError{Message: "backend down"}}

	_, err := SelectTopK(context.Background(), embedder, []string{"a", "b", "c"}, "job", DefaultTopK)
	require.Error(t, err)

	var unavailable *embedding.UnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestTopKByVector_EmptyPoints(t *testing.T) {
	selected, err := TopKByVector(context.Background(), newSelectEmbedder(), nil, []float32{1, 0, 0}, DefaultTopK)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
