package algorithms

import (
	"math/rand/v2"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

func testRand() *rand.Rand {
	return NewRand(7)
}

// ind builds an evaluated individual whose single variable is id.
func ind(id float64, objectives ...float64) *framework.Individual {
	return &framework.Individual{
		Solution:   framework.NewRealSolution([]float64{id}, nil),
		Objectives: objectives,
	}
}

func ids(individuals []*framework.Individual) []float64 {
	out := make([]float64, 0, len(individuals))
	for _, i := range individuals {
		out = append(out, i.Solution.Values()[0])
	}
	return out
}

func testArgs(popSize, maxEvaluations int, strategy v1alpha1.WeightStrategy) *v1alpha1.WeipsArgs {
	args := &v1alpha1.WeipsArgs{
		PopulationSize: popSize,
		MaxEvaluations: maxEvaluations,
		Strategy:       strategy,
		Seed:           1,
	}
	v1alpha1.SetDefaults_WeipsArgs(args)
	return args
}

// fixedComparator always prefers the lower value of one objective.
type fixedComparator struct {
	objective int
	calls     int
}

func (c *fixedComparator) Compare(a, b *framework.Individual) (int, error) {
	c.calls++
	switch {
	case a.Objectives[c.objective] < b.Objectives[c.objective]:
		return -1, nil
	case a.Objectives[c.objective] > b.Objectives[c.objective]:
		return 1, nil
	}
	return 0, nil
}
