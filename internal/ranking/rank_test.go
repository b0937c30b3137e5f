package ranking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_DescendingOrder(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{0, 1},  // orthogonal
		{1, 0},  // identical
		{1, 1},  // diagonal
		{-1, 0}, // opposite
	}

	ranked, err := Rank(query, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	assert.Equal(t, 1, ranked[0].Index)
	assert.Equal(t, 2, ranked[1].Index)
	assert.Equal(t, 0, ranked[2].Index)
	assert.Equal(t, 3, ranked[3].Index)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.InDelta(t, -1.0, ranked[3].Score, 1e-9)
}

func TestRank_TieStability(t *testing.T) {
	query := []float32{1, 0}
	// Candidates 0 and 2 have identical similarity to the query; the lower
	// original index must come first.
	candidates := [][]float32{
		{2, 0},
		{1, 1},
		{5, 0},
	}

	ranked, err := Rank(query, candidates)
	require.NoError(t, err)

	assert.Equal(t, 0, ranked[0].Index)
	assert.Equal(t, 2, ranked[1].Index)
	assert.Equal(t, 1, ranked[2].Index)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_EmptyCandidates(t *testing.T) {
	ranked, err := Rank([]float32{1, 0}, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestCosine_ZeroMagnitude(t *testing.T) {
	_, err := Cosine([]float32{0, 0}, []float32{1, 0})
	require.Error(t, err)

	var compErr *ComputationError
	assert.True(t, errors.As(err, &compErr))
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 0}, []float32{1, 0, 0})
	require.Error(t, err)

	var compErr *ComputationError
	assert.True(t, errors.As(err, &compErr))
}

func TestCosine_ScoreRange(t *testing.T) {
	score, err := Cosine([]float32{3, 4}, []float32{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)

	score, err = Cosine([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-9)
}
