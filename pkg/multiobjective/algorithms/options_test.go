package algorithms

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

// onesProblem trades the share of set bits against the share of clear ones.
type onesProblem struct {
	bits int
}

func ones(s framework.Solution) float64 {
	n := 0.0
	for _, v := range s.Values() {
		n += v
	}
	return n / float64(s.Len())
}

func (p *onesProblem) Name() string { return "Ones" }

func (p *onesProblem) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		ones,
		func(s framework.Solution) float64 { return 1 - ones(s) },
	}
}

func (p *onesProblem) Constraints() []framework.Constraint { return nil }

func (p *onesProblem) Bounds() []framework.Bounds { return nil }

func (p *onesProblem) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	out := make([]framework.Solution, popSize)
	for i := range out {
		bits := make([]bool, p.bits)
		for j := range bits {
			bits[j] = rng.IntN(2) == 1
		}
		out[i] = framework.NewBinarySolution(bits)
	}
	return out
}

func (p *onesProblem) TrueParetoFront(int) []framework.ObjectiveSpacePoint { return nil }

func countFlips(t *testing.T, v framework.Variation, bits, trials int) float64 {
	t.Helper()
	rng := testRand()
	flipped := 0
	for i := 0; i < trials; i++ {
		s := framework.NewBinarySolution(make([]bool, bits))
		require.NoError(t, v.Mutate(s, rng))
		for _, b := range s.Bits {
			if b {
				flipped++
			}
		}
	}
	return float64(flipped) / float64(trials)
}

func TestSetupBinaryMutationDefault(t *testing.T) {
	_, o, err := setup(testArgs(10, 100, v1alpha1.StrategyUnpas), &onesProblem{bits: 20}, nil)
	require.NoError(t, err)

	// 1/20 per bit flips one bit per mutation on average, not all twenty.
	assert.InDelta(t, 1.0, countFlips(t, o.variation, 20, 2000), 0.15)
}

func TestSetupExplicitMutationProbability(t *testing.T) {
	args := testArgs(10, 100, v1alpha1.StrategyUnpas)
	args.MutationProbability = ptr.To(0.5)
	_, o, err := setup(args, &onesProblem{bits: 20}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, countFlips(t, o.variation, 20, 2000), 0.5)
}

func TestWeipsBinaryProblem(t *testing.T) {
	w, err := NewWeips(testArgs(10, 200, v1alpha1.StrategyGrips), &onesProblem{bits: 20})
	require.NoError(t, err)

	res, err := w.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, res.Evaluations)
	assert.Len(t, res.Population, 10)

	// Every ones count lies on the front, and duplicates count as dominated.
	distinct := map[float64]bool{}
	for _, i := range res.Population {
		distinct[i.Objectives[0]] = true
	}
	assert.Greater(t, len(distinct), 2)
}
