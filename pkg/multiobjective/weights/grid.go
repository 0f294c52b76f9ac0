package weights

import (
	"fmt"
	"math/rand/v2"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/stat/combin"
)

// GridSize is the number of rows the lattice of numObjectives coordinates with
// numWeights evenly spaced levels in [0, 1] has.
func GridSize(numObjectives, numWeights int) int {
	if numObjectives < 1 || numWeights < 1 {
		return 0
	}
	return combin.Binomial(numWeights-1+numObjectives-1, numObjectives-1)
}

// GridSubdivisions returns the smallest numWeights for which the lattice has
// at least minRows rows. With 3 objectives and 300 rows it returns 24.
func GridSubdivisions(numObjectives, minRows int) int {
	n := 1
	for GridSize(numObjectives, n) < minRows {
		n++
	}
	return n
}

// Grid is the Grips strategy: every point of the simplex lattice whose
// coordinates are multiples of 1/(numWeights-1). The row count is
// GridSize(numObjectives, numWeights), not numWeights.
type Grid struct {
	cache *cache.Cache
}

// NewGrid returns a Grid that memoizes lattices in c. c may be nil.
func NewGrid(c *cache.Cache) *Grid {
	return &Grid{cache: c}
}

func (g *Grid) Name() string { return GripsName }

func (g *Grid) Generate(numObjectives, numWeights int, _ *rand.Rand) (Matrix, error) {
	if err := checkDimensions(numObjectives, numWeights); err != nil {
		return nil, err
	}
	if g.cache == nil {
		return lattice(numObjectives, numWeights), nil
	}

	key := fmt.Sprintf("grid/%d/%d", numObjectives, numWeights)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(Matrix).Clone(), nil
	}
	m := lattice(numObjectives, numWeights)
	g.cache.SetDefault(key, m.Clone())
	return m, nil
}

// lattice enumerates the grid in odometer order. The first numObjectives-1
// level indexes form a counter whose digits never sum past numWeights-1; the
// last index takes the remaining steps.
func lattice(numObjectives, numWeights int) Matrix {
	if numWeights == 1 {
		row := make(Vector, numObjectives)
		row[numObjectives-1] = 1
		return Matrix{row}
	}

	steps := numWeights - 1
	levels := make([]float64, numWeights)
	for i := range levels {
		levels[i] = float64(i) / float64(steps)
	}

	last := numObjectives - 1
	idx := make([]int, numObjectives)
	m := make(Matrix, 0, GridSize(numObjectives, numWeights))
	for {
		partial := 0
		for _, k := range idx[:last] {
			partial += k
		}
		idx[last] = steps - partial

		row := make(Vector, numObjectives)
		for i, k := range idx {
			row[i] = levels[k]
		}
		m = append(m, row)

		// Advance the last free digit, carrying into the previous one
		// whenever the prefix sum overflows.
		d := last - 1
		for ; d >= 0; d-- {
			idx[d]++
			prefix := 0
			for _, k := range idx[:d+1] {
				prefix += k
			}
			if prefix <= steps {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return m
		}
	}
}

// StratifiedGrid is the StratGrips strategy: each lattice row is multiplied
// entrywise by uniform(0,1) draws and renormalized.
type StratifiedGrid struct {
	grid *Grid
}

// NewStratifiedGrid returns a StratifiedGrid whose lattice is memoized in c. c may be nil.
func NewStratifiedGrid(c *cache.Cache) *StratifiedGrid {
	return &StratifiedGrid{grid: NewGrid(c)}
}

func (s *StratifiedGrid) Name() string { return StratGripsName }

func (s *StratifiedGrid) Generate(numObjectives, numWeights int, rng *rand.Rand) (Matrix, error) {
	base, err := s.grid.Generate(numObjectives, numWeights, rng)
	if err != nil {
		return nil, err
	}

	m := make(Matrix, len(base))
	for r, point := range base {
		row := make(Vector, len(point))
		ok := false
		for attempt := 0; attempt < maxRedraws && !ok; attempt++ {
			for i, w := range point {
				row[i] = w * rng.Float64()
			}
			ok = normalize(row)
		}
		if !ok {
			return nil, fmt.Errorf("%w: lattice row %d could not be stratified", ErrDegenerateWeights, r)
		}
		m[r] = row
	}
	return m, nil
}
