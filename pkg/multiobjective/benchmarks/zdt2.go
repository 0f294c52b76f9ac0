package benchmarks

import (
	"math/rand/v2"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const ZDT2Name = "ZDT2"

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return ZDT2Name
}

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{zdtF1, p.f2}
}

func (p *ZDT2) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := zdtG(xx)
	return g * (1.0 - (xx[0]/g)*(xx[0]/g))
}

func (p *ZDT2) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT2) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT2) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, p.Bounds(), rng)
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
	}
	return points
}
