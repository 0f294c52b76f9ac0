package algorithms

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/weips/weips/pkg/multiobjective/framework"
	"github.com/weips/weips/pkg/multiobjective/weights"
)

// Comparator orders two individuals. It returns -1 when a is better, 1 when b
// is better and 0 on a tie.
type Comparator interface {
	Compare(a, b *framework.Individual) (int, error)
}

// WeightedComparator compares by constraint violation and, on a tie, by the
// weighted sum of the objectives. A weight vector is drawn independently for
// every call, so two comparisons inside one tournament may use different
// scalarizations.
type WeightedComparator struct {
	weights weights.Matrix
	rng     *rand.Rand
}

var _ Comparator = &WeightedComparator{}

// NewWeightedComparator returns a comparator drawing rows of m. When m is
// empty a fresh uniform-random vector is sampled for every comparison.
func NewWeightedComparator(m weights.Matrix, rng *rand.Rand) *WeightedComparator {
	return &WeightedComparator{
		weights: m,
		rng:     rng,
	}
}

func (c *WeightedComparator) Compare(a, b *framework.Individual) (int, error) {
	if len(a.Objectives) != len(b.Objectives) {
		return 0, fmt.Errorf("%w: %d vs %d objectives", framework.ErrDimensionMismatch, len(a.Objectives), len(b.Objectives))
	}
	if flag := framework.CompareViolation(a, b); flag != 0 {
		return flag, nil
	}

	w, err := c.vector(len(a.Objectives))
	if err != nil {
		return 0, err
	}
	if len(w) != len(a.Objectives) {
		return 0, fmt.Errorf("%w: weight vector has %d entries for %d objectives", framework.ErrDimensionMismatch, len(w), len(a.Objectives))
	}

	sumA := floats.Dot(w, a.Objectives)
	sumB := floats.Dot(w, b.Objectives)
	switch {
	case sumA < sumB:
		return -1, nil
	case sumA > sumB:
		return 1, nil
	}
	return 0, nil
}

func (c *WeightedComparator) vector(numObjectives int) (weights.Vector, error) {
	if len(c.weights) == 0 {
		return weights.Sample(numObjectives, c.rng)
	}
	return c.weights[c.rng.IntN(len(c.weights))], nil
}
