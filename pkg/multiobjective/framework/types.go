package framework

import "math/rand/v2"

// Individual is a member of a population: a decision vector together with
// the objective values and overall constraint violation computed for it.
type Individual struct {
	Solution   Solution
	Objectives []float64

	// Violation is the overall constraint violation degree. Zero means the
	// individual is feasible, larger values are worse.
	Violation float64
}

// NewIndividual wraps a not yet evaluated Solution.
func NewIndividual(s Solution) *Individual {
	return &Individual{Solution: s}
}

// Feasible reports whether the individual satisfies every constraint.
func (ind *Individual) Feasible() bool {
	return ind.Violation <= 0
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(Solution) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Constraint returns the amount by which a solution violates it.
// Zero (or any non-positive value) means the constraint is satisfied.
type Constraint func(Solution) float64

// Problem describes the contract a specific multi-objective problem needs to implement.
// All objectives are minimized.
type Problem interface {
	Name() string

	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint
	Bounds() []Bounds

	// Initialize returns popSize fresh, not yet evaluated solutions drawn
	// from rng.
	Initialize(popSize int, rng *rand.Rand) []Solution

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Evaluator computes objectives and constraint violation of an individual in place.
type Evaluator interface {
	Evaluate(ind *Individual) error
}

// Variation produces offspring from parents. Crossover is 2-in/2-out and
// never modifies the parents; Mutate changes its argument in place.
type Variation interface {
	Crossover(parent1, parent2 Solution, rng *rand.Rand) (Solution, Solution, error)
	Mutate(s Solution, rng *rand.Rand) error
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}
