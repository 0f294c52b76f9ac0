package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const DTLZ2Name = "DTLZ2"

// DTLZ2 has a spherical Pareto front
// It's easier than DTLZ1 as it has no local fronts
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ2) Name() string {
	return DTLZ2Name
}

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		funcs[i] = func(x framework.Solution) float64 {
			return p.objective(x, i)
		}
	}
	return funcs
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) objective(sol framework.Solution, objIdx int) float64 {
	x := sol.(*framework.RealSolution).Variables
	f := 1 + p.g(x)

	// Product of cos terms
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}

	// Last term is sin for all objectives except the first
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}

	return f
}

func (p *DTLZ2) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ2) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *DTLZ2) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, p.Bounds(), rng)
}

func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// For DTLZ2, the true Pareto front is on a unit sphere: sum(f_i^2) = 1
	// For 2 objectives, it's a quarter circle
	if p.numObjectives == 2 {
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{
				math.Cos(theta),
				math.Sin(theta),
			}
		}
		return points
	}
	if p.numObjectives == 3 {
		sqrtN := int(math.Sqrt(float64(numPoints)))
		points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)

		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	}
	return nil
}
