package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const ZDT3Name = "ZDT3"

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string {
	return ZDT3Name
}

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{zdtF1, p.f2}
}

func (p *ZDT3) f2(x framework.Solution) float64 {
	xx := x.(*framework.RealSolution).Variables
	g := zdtG(xx)
	// ZDT3 has a disconnected front due to the sin term
	h := 1.0 - math.Sqrt(xx[0]/g) - (xx[0]/g)*math.Sin(10*math.Pi*xx[0])
	return g * h
}

func (p *ZDT3) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT3) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT3) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, p.Bounds(), rng)
}

// zdt3Segments are the x1 intervals on which the ZDT3 front lies
var zdt3Segments = [][2]float64{
	{0.0, 0.0830015349},
	{0.1822287280, 0.2577623634},
	{0.4093136748, 0.4538821041},
	{0.6183967944, 0.6525117038},
	{0.8233317983, 0.8518328654},
}

// TrueParetoFront samples numPoints points spread over the five front segments
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	total := 0.0
	for _, s := range zdt3Segments {
		total += s[1] - s[0]
	}

	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		// Walk the concatenated segments at evenly spaced offsets
		offset := total * float64(i) / float64(max(numPoints-1, 1))
		for j, s := range zdt3Segments {
			width := s[1] - s[0]
			if offset > width && j < len(zdt3Segments)-1 {
				offset -= width
				continue
			}
			x := min(s[0]+offset, s[1])
			points = append(points, framework.ObjectiveSpacePoint{
				x, 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x),
			})
			break
		}
	}
	return points
}
