package benchmarks

import (
	"math/rand/v2"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const ConstrExName = "ConstrEx"

// ConstrEx is a two variable, two constraint problem whose feasible region
// cuts the unconstrained front:
//
//	f1 = x1, f2 = (1 + x2) / x1
//	x2 + 9*x1 >= 6, -x2 + 9*x1 >= 1
//	x1 in [0.1, 1], x2 in [0, 5]
type ConstrEx struct{}

func NewConstrEx() *ConstrEx {
	return &ConstrEx{}
}

func (p *ConstrEx) Name() string {
	return ConstrExName
}

func (p *ConstrEx) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(s framework.Solution) float64 {
			return s.(*framework.RealSolution).Variables[0]
		},
		func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return (1.0 + x[1]) / x[0]
		},
	}
}

func (p *ConstrEx) Constraints() []framework.Constraint {
	return []framework.Constraint{
		func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return max(0, 6.0-(x[1]+9.0*x[0]))
		},
		func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return max(0, 1.0-(-x[1]+9.0*x[0]))
		},
	}
}

func (p *ConstrEx) Bounds() []framework.Bounds {
	return []framework.Bounds{{L: 0.1, H: 1.0}, {L: 0.0, H: 5.0}}
}

func (p *ConstrEx) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, p.Bounds(), rng)
}

// TrueParetoFront follows the two constraint boundaries: x2 = 6 - 9*x1 for
// x1 in [7/18, 2/3] and x2 = 0 for x1 in [2/3, 1].
func (p *ConstrEx) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	lo, hi := 7.0/18.0, 1.0
	for i := 0; i < numPoints; i++ {
		x1 := lo + (hi-lo)*float64(i)/float64(max(numPoints-1, 1))
		x2 := max(0, 6.0-9.0*x1)
		points[i] = framework.ObjectiveSpacePoint{x1, (1.0 + x2) / x1}
	}
	return points
}
