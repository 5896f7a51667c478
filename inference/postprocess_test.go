package inference

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftmaxExample(t *testing.T) {
	probs, err := Softmax([]float32{1, 2, 3})
	require.NoError(t, err)

	expected := []float32{0.0900, 0.2447, 0.6652}
	require.Len(t, probs, 3)
	for i := range expected {
		assert.InDelta(t, expected[i], probs[i], 1e-3)
	}
}

func TestSoftmaxSumsToOne(t *testing.T) {
	cases := [][]float32{
		{0},
		{1, 2, 3},
		{-5, 0, 5},
		{0.25, 0.25, 0.25, 0.25},
	}
	for _, scores := range cases {
		probs, err := Softmax(scores)
		require.NoError(t, err)

		var sum float32
		for _, p := range probs {
			assert.Greater(t, p, float32(0))
			assert.LessOrEqual(t, p, float32(1))
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	}
}

func TestSoftmaxShiftInvariance(t *testing.T) {
	scores := []float32{0.5, -1.25, 3, 2}
	shifted := make([]float32, len(scores))
	for i, s := range scores {
		shifted[i] = s + 100
	}

	base, err := Softmax(scores)
	require.NoError(t, err)
	moved, err := Softmax(shifted)
	require.NoError(t, err)

	for i := range base {
		assert.InDelta(t, base[i], moved[i], 1e-6)
	}
}

func TestSoftmaxLargeScoresDoNotOverflow(t *testing.T) {
	probs, err := Softmax([]float32{1000, 1001})
	require.NoError(t, err)
	assert.InDelta(t, 0.2689, probs[0], 1e-3)
	assert.InDelta(t, 0.7311, probs[1], 1e-3)
}

func TestSoftmaxEmptyInput(t *testing.T) {
	_, err := Softmax(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestTopKExample(t *testing.T) {
	predictions := TopK([]float32{0.1, 0.7, 0.2}, 2, nil)

	require.Len(t, predictions, 2)
	assert.Equal(t, 1, predictions[0].Index)
	assert.InDelta(t, 0.7, predictions[0].Probability, 1e-6)
	assert.Equal(t, 2, predictions[1].Index)
	assert.InDelta(t, 0.2, predictions[1].Probability, 1e-6)
}

func TestTopKOrderingIsNonIncreasing(t *testing.T) {
	probs := []float32{0.05, 0.3, 0.1, 0.3, 0.25}
	predictions := TopK(probs, len(probs), nil)

	require.Len(t, predictions, len(probs))
	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].Probability, predictions[i].Probability)
	}
}

func TestTopKTiesKeepIndexOrder(t *testing.T) {
	predictions := TopK([]float32{0.3, 0.3, 0.4}, 3, nil)

	require.Len(t, predictions, 3)
	assert.Equal(t, 2, predictions[0].Index)
	assert.Equal(t, 0, predictions[1].Index)
	assert.Equal(t, 1, predictions[2].Index)
}

func TestTopKBeyondLength(t *testing.T) {
	predictions := TopK([]float32{0.6, 0.4}, 10, nil)
	assert.Len(t, predictions, 2)
}

func TestTopKDefaultsK(t *testing.T) {
	probs := []float32{0.1, 0.2, 0.3, 0.05, 0.15, 0.12, 0.08}
	predictions := TopK(probs, 0, nil)
	assert.Len(t, predictions, DefaultTopK)
}

func TestTopKIdempotentRanking(t *testing.T) {
	probs := []float32{0.1, 0.5, 0.2, 0.15, 0.05}
	first := TopK(probs, 3, nil)

	ranked := make([]float32, len(first))
	for i, p := range first {
		ranked[i] = p.Probability
	}
	second := TopK(ranked, 3, nil)

	for i := range second {
		assert.Equal(t, i, second[i].Index)
		assert.InDelta(t, first[i].Probability, second[i].Probability, 1e-6)
	}
}

func TestTopKUsesCatalogNames(t *testing.T) {
	catalog := NewCatalog([]string{"tench", "goldfish", "great_white_shark"})
	predictions := TopK([]float32{0.1, 0.2, 0.7}, 2, catalog)

	require.Len(t, predictions, 2)
	assert.Equal(t, "great white shark", predictions[0].Label)
	assert.Equal(t, "goldfish", predictions[1].Label)
}

func TestTopKFallbackLabelWithoutCatalog(t *testing.T) {
	predictions := TopK([]float32{0.9, 0.1}, 1, nil)
	require.Len(t, predictions, 1)
	assert.Equal(t, "class 0", predictions[0].Label)
}
