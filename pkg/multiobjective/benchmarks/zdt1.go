package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const (
	ZDT1Name = "ZDT1"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return ZDT1Name
}

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		zdtF1, p.f2,
	}
}

// f2 is the second ZDT1 benchmark objective
func (p *ZDT1) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := zdtG(xx)
	return g * (1.0 - math.Sqrt(xx[0]/g))
}

// This is an unconstrained problem
func (p *ZDT1) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

// Initialize creates an initial random population of individuals
func (p *ZDT1) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, p.Bounds(), rng)
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}

// zdtF1 is the first objective shared by the ZDT family
func zdtF1(x framework.Solution) float64 {
	return x.(*framework.RealSolution).Variables[0]
}

func zdtG(xx []float64) float64 {
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	return g
}

func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range numVars {
		b[i] = framework.Bounds{
			L: 0.0,
			H: 1.0,
		}
	}
	return b
}

// uniformPopulation draws every variable uniformly within its bounds
func uniformPopulation(popSize int, b []framework.Bounds, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	for i := 0; i < popSize; i++ {
		vars := make([]float64, len(b))
		for j := range b {
			vars[j] = b[j].L + rng.Float64()*(b[j].H-b[j].L)
		}
		population[i] = framework.NewRealSolution(vars, b)
	}
	return population
}
