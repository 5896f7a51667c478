package inference

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// DefaultTopK is the number of predictions returned when the caller does
// not ask for a specific count.
const DefaultTopK = 5

// Prediction is one ranked classification result.
type Prediction struct {
	// Index is the 0-based class index in the score vector.
	Index int `json:"index"`
	// Label is the display name of the class, spaces instead of underscores.
	Label string `json:"label"`
	// Probability is the softmax probability in [0, 1].
	Probability float32 `json:"probability"`
}

// Softmax converts raw class scores into a probability distribution.
//
// The numerically stable form is used: the maximum score is subtracted
// before exponentiation so that large logits cannot overflow.
//
// Arguments:
//   - scores: Raw, unnormalized class scores.
//
// Returns:
//   - []float32: Probabilities of equal length, each in (0, 1), summing to 1.
//   - error: ErrInvalidInput on an empty score vector.
func Softmax(scores []float32) ([]float32, error) {
	if len(scores) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "empty score vector")
	}

	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	out := make([]float32, len(scores))
	var sum float32
	for i, s := range scores {
		e := math32.Exp(s - max)
		out[i] = e
		sum += e
	}
	for i := range out {
		out[i] /= sum
	}
	return out, nil
}

// TopK selects the k most probable classes, ranked by descending
// probability. Ties keep their original index order. When k exceeds the
// number of classes every class is returned; k <= 0 means DefaultTopK.
//
// Arguments:
//   - probabilities: Softmax output, one value per class.
//   - k: How many predictions to return.
//   - catalog: Label catalog for display names; may be nil, in which case
//     every class falls back to its synthesized name.
//
// Returns:
//   - []Prediction: min(k, len(probabilities)) predictions in rank order.
func TopK(probabilities []float32, k int, catalog *Catalog) []Prediction {
	if k <= 0 {
		k = DefaultTopK
	}
	if k > len(probabilities) {
		k = len(probabilities)
	}

	order := make([]int, len(probabilities))
	for i := range order {
		order[i] = i
	}
	// Stable on equal probabilities, preserving ascending index order.
	sort.SliceStable(order, func(i, j int) bool {
		return probabilities[order[i]] > probabilities[order[j]]
	})

	predictions := make([]Prediction, 0, k)
	for _, idx := range order[:k] {
		predictions = append(predictions, Prediction{
			Index:       idx,
			Label:       catalog.DisplayName(idx),
			Probability: probabilities[idx],
		})
	}
	return predictions
}
