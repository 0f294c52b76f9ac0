package framework

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Solution is a decision vector. Implementations must be deep-copyable so
// variation never touches a parent.
type Solution interface {
	Clone() Solution
	// Values returns the decision variables as reals, for reporting.
	Values() []float64
	// Len is the number of decision variables, or bits for a binary encoding.
	Len() int
}

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

func (s *BinarySolution) Clone() Solution {
	newBits := make([]bool, len(s.Bits))
	copy(newBits, s.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

func (s *BinarySolution) Len() int {
	return len(s.Bits)
}

func (s *BinarySolution) Values() []float64 {
	vals := make([]float64, len(s.Bits))
	for i, b := range s.Bits {
		if b {
			vals[i] = 1
		}
	}
	return vals
}

// SinglePointCrossover swaps the tails of both parents after a random cut point
// with the given probability. The parents are left untouched.
func (s *BinarySolution) SinglePointCrossover(o *BinarySolution, probability float64, rng *rand.Rand) (*BinarySolution, *BinarySolution) {
	child1 := s.Clone().(*BinarySolution)
	child2 := o.Clone().(*BinarySolution)

	if len(s.Bits) > 0 && rng.Float64() < probability {
		point := rng.IntN(len(s.Bits))
		for i := point; i < len(s.Bits); i++ {
			child1.Bits[i], child2.Bits[i] = child2.Bits[i], child1.Bits[i]
		}
	}

	return child1, child2
}

// BitFlip flips every bit independently with the given probability.
func (s *BinarySolution) BitFlip(probability float64, rng *rand.Rand) {
	for i := range s.Bits {
		if rng.Float64() < probability {
			s.Bits[i] = !s.Bits[i]
		}
	}
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Variables []float64
	Bounds    []Bounds
}

type Bounds struct {
	L float64
	H float64
}

func NewRealSolution(vars []float64, b []Bounds) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *RealSolution) Clone() Solution {
	vars := make([]float64, len(sol.Variables))
	copy(vars, sol.Variables)
	return &RealSolution{
		Variables: vars,
		Bounds:    sol.Bounds,
	}
}

func (sol *RealSolution) Values() []float64 {
	return sol.Variables
}

func (sol *RealSolution) Len() int {
	return len(sol.Variables)
}

// SBX performs simulated binary crossover with distribution index eta.
// Children are clipped to the variable bounds.
func (sol *RealSolution) SBX(o *RealSolution, probability, eta float64, rng *rand.Rand) (*RealSolution, *RealSolution) {
	child1 := sol.Clone().(*RealSolution)
	child2 := o.Clone().(*RealSolution)

	if rng.Float64() >= probability {
		return child1, child2
	}

	exp := 1.0 / (eta + 1.0)
	for i := range sol.Variables {
		u := rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, exp)
		} else {
			beta = math.Pow(1.0/(2*(1.0-u)), exp)
		}

		child1.Variables[i] = 0.5 * ((1+beta)*sol.Variables[i] + (1-beta)*o.Variables[i])
		child2.Variables[i] = 0.5 * ((1-beta)*sol.Variables[i] + (1+beta)*o.Variables[i])

		// Bound checking
		child1.Variables[i] = sol.clip(i, child1.Variables[i])
		child2.Variables[i] = sol.clip(i, child2.Variables[i])
	}

	return child1, child2
}

// PolynomialMutation perturbs every variable with the given probability
// using a polynomial distribution with index eta. The step is scaled by the
// variable's range, so variables without bounds are left as they are.
func (sol *RealSolution) PolynomialMutation(probability, eta float64, rng *rand.Rand) {
	exp := 1.0 / (eta + 1.0)
	for i := range sol.Variables {
		if i >= len(sol.Bounds) {
			break
		}
		if rng.Float64() >= probability {
			continue
		}
		u := rng.Float64()
		var delta float64
		if u < 0.5 {
			delta = math.Pow(2*u, exp) - 1
		} else {
			delta = 1 - math.Pow(2*(1-u), exp)
		}

		sol.Variables[i] += delta * (sol.Bounds[i].H - sol.Bounds[i].L)
		sol.Variables[i] = sol.clip(i, sol.Variables[i])
	}
}

func (sol *RealSolution) clip(i int, v float64) float64 {
	if i >= len(sol.Bounds) {
		return v
	}
	return math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, v))
}

// DefaultVariation dispatches on the solution encoding: SBX and polynomial
// mutation for RealSolution, single-point crossover and bit-flip mutation for
// BinarySolution.
type DefaultVariation struct {
	CrossoverProbability       float64
	CrossoverDistributionIndex float64
	// MutationProbability is the per-variable (or per-bit) probability.
	// When nil, 1/Len() of the mutated solution is used.
	MutationProbability       *float64
	MutationDistributionIndex float64
}

var _ Variation = &DefaultVariation{}

func (v *DefaultVariation) Crossover(parent1, parent2 Solution, rng *rand.Rand) (Solution, Solution, error) {
	switch p1 := parent1.(type) {
	case *RealSolution:
		p2, ok := parent2.(*RealSolution)
		if !ok {
			return nil, nil, fmt.Errorf("%w: cannot cross %T with %T", ErrVariation, parent1, parent2)
		}
		if len(p1.Variables) != len(p2.Variables) {
			return nil, nil, fmt.Errorf("%w: parents have %d and %d variables", ErrVariation, len(p1.Variables), len(p2.Variables))
		}
		c1, c2 := p1.SBX(p2, v.CrossoverProbability, v.CrossoverDistributionIndex, rng)
		return c1, c2, nil
	case *BinarySolution:
		p2, ok := parent2.(*BinarySolution)
		if !ok {
			return nil, nil, fmt.Errorf("%w: cannot cross %T with %T", ErrVariation, parent1, parent2)
		}
		if len(p1.Bits) != len(p2.Bits) {
			return nil, nil, fmt.Errorf("%w: parents have %d and %d bits", ErrVariation, len(p1.Bits), len(p2.Bits))
		}
		c1, c2 := p1.SinglePointCrossover(p2, v.CrossoverProbability, rng)
		return c1, c2, nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported solution type %T", ErrVariation, parent1)
	}
}

func (v *DefaultVariation) Mutate(s Solution, rng *rand.Rand) error {
	switch sol := s.(type) {
	case *RealSolution:
		sol.PolynomialMutation(v.mutationProbability(sol), v.MutationDistributionIndex, rng)
	case *BinarySolution:
		sol.BitFlip(v.mutationProbability(sol), rng)
	default:
		return fmt.Errorf("%w: unsupported solution type %T", ErrVariation, s)
	}
	return nil
}

func (v *DefaultVariation) mutationProbability(s Solution) float64 {
	if v.MutationProbability != nil {
		return *v.MutationProbability
	}
	if n := s.Len(); n > 0 {
		return 1 / float64(n)
	}
	return 0
}

// ProblemEvaluator evaluates individuals with the objective functions and
// constraints of a Problem.
type ProblemEvaluator struct {
	problem     Problem
	objectives  []ObjectiveFunc
	constraints []Constraint
}

var _ Evaluator = &ProblemEvaluator{}

func NewProblemEvaluator(p Problem) *ProblemEvaluator {
	return &ProblemEvaluator{
		problem:     p,
		objectives:  p.ObjectiveFuncs(),
		constraints: p.Constraints(),
	}
}

// Evaluate sets the objective vector and the overall constraint violation,
// which is the sum of the positive constraint violations.
func (e *ProblemEvaluator) Evaluate(ind *Individual) error {
	if ind == nil || ind.Solution == nil {
		return fmt.Errorf("%w: %s: nil solution", ErrEvaluation, e.problem.Name())
	}

	objs := make([]float64, len(e.objectives))
	for i, f := range e.objectives {
		objs[i] = f(ind.Solution)
		if math.IsNaN(objs[i]) {
			return fmt.Errorf("%w: %s: objective %d is NaN", ErrEvaluation, e.problem.Name(), i)
		}
	}

	violation := 0.0
	for _, c := range e.constraints {
		if v := c(ind.Solution); v > 0 {
			violation += v
		}
	}

	ind.Objectives = objs
	ind.Violation = violation
	return nil
}
