// Package weights generates weight vectors on the unit simplex. A weight
// matrix is built once per run and used read-only by the weighted comparator.
package weights

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/floats"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

const (
	// RawpsName builds no matrix; a fresh random vector is drawn per comparison.
	RawpsName = "Rawps"
	// UnpasName draws numWeights uniform-random vectors once.
	UnpasName = "Unpas"
	// GripsName enumerates a regular simplex lattice.
	GripsName = "Grips"
	// StratGripsName randomly perturbs every lattice point.
	StratGripsName = "StratGrips"

	// minWeightSum is the smallest row sum accepted for normalization.
	minWeightSum = 1e-12
	// maxRedraws bounds the number of attempts to draw a row whose sum can be normalized.
	maxRedraws = 64
)

var (
	// ErrUnknownStrategy is returned by ForName for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("unknown weight strategy")
	// ErrDegenerateWeights is returned when no normalizable row could be drawn.
	ErrDegenerateWeights = errors.New("degenerate weight vector")
)

// Vector is a point on the unit simplex: non-negative entries summing to one.
type Vector []float64

// Matrix is a collection of weight vectors.
type Matrix []Vector

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append(Vector(nil), row...)
	}
	return out
}

// Strategy builds the weight matrix of a run.
type Strategy interface {
	Name() string
	// Generate returns the weight matrix for numObjectives objectives. A nil
	// matrix with a nil error means vectors are sampled on demand.
	Generate(numObjectives, numWeights int, rng *rand.Rand) (Matrix, error)
}

// Strategies lists the names accepted by ForName.
func Strategies() []string {
	return []string{RawpsName, UnpasName, GripsName, StratGripsName}
}

// ForName returns the strategy registered under name (case-insensitive).
// Grid based strategies memoize their lattice in c when it is not nil.
func ForName(name string, c *cache.Cache) (Strategy, error) {
	switch {
	case strings.EqualFold(name, RawpsName):
		return Random{}, nil
	case strings.EqualFold(name, UnpasName):
		return Uniform{}, nil
	case strings.EqualFold(name, GripsName):
		return NewGrid(c), nil
	case strings.EqualFold(name, StratGripsName):
		return NewStratifiedGrid(c), nil
	}
	return nil, fmt.Errorf("%w: %q, supported: %s", ErrUnknownStrategy, name, strings.Join(Strategies(), ", "))
}

// Sample draws one vector with uniform(0,1) entries normalized to sum to one.
func Sample(numObjectives int, rng *rand.Rand) (Vector, error) {
	v := make(Vector, numObjectives)
	for attempt := 0; attempt < maxRedraws; attempt++ {
		for i := range v {
			v[i] = rng.Float64()
		}
		if normalize(v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %d uniform draws summed to zero", ErrDegenerateWeights, maxRedraws)
}

// normalize scales v in place so that it sums to one. It reports false and
// leaves v unchanged when the sum is too small to divide by.
func normalize(v Vector) bool {
	sum := floats.Sum(v)
	if sum < minWeightSum {
		return false
	}
	floats.Scale(1/sum, v)
	return true
}

func checkDimensions(numObjectives, numWeights int) error {
	if numObjectives < 2 {
		return fmt.Errorf("%w: numObjectives must be at least 2, got %d", framework.ErrInvalidConfiguration, numObjectives)
	}
	if numWeights < 1 {
		return fmt.Errorf("%w: numWeights must be at least 1, got %d", framework.ErrInvalidConfiguration, numWeights)
	}
	return nil
}

// Random is the Rawps strategy.
type Random struct{}

func (Random) Name() string { return RawpsName }

func (Random) Generate(numObjectives, numWeights int, _ *rand.Rand) (Matrix, error) {
	return nil, checkDimensions(numObjectives, numWeights)
}

// Uniform is the Unpas strategy. Rows are independent and may repeat.
type Uniform struct{}

func (Uniform) Name() string { return UnpasName }

func (Uniform) Generate(numObjectives, numWeights int, rng *rand.Rand) (Matrix, error) {
	if err := checkDimensions(numObjectives, numWeights); err != nil {
		return nil, err
	}
	m := make(Matrix, numWeights)
	for i := range m {
		v, err := Sample(numObjectives, rng)
		if err != nil {
			return nil, err
		}
		m[i] = v
	}
	return m, nil
}
