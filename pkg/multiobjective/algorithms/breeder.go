package algorithms

import (
	"context"
	"errors"
	"fmt"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// breeder creates, varies and evaluates individuals while keeping count of
// the evaluation budget.
type breeder struct {
	*options
	maxEvaluations int
	evaluations    int
}

func newBreeder(o *options, maxEvaluations int) *breeder {
	return &breeder{options: o, maxEvaluations: maxEvaluations}
}

func (b *breeder) exhausted() bool {
	return b.evaluations >= b.maxEvaluations
}

func (b *breeder) evaluate(ind *framework.Individual) error {
	if err := b.evaluator.Evaluate(ind); err != nil {
		if errors.Is(err, framework.ErrEvaluation) {
			return err
		}
		return fmt.Errorf("%w: %w", framework.ErrEvaluation, err)
	}
	b.evaluations++
	return nil
}

// initialize creates and evaluates popSize fresh individuals.
func (b *breeder) initialize(problem framework.Problem, popSize int) ([]*framework.Individual, error) {
	solutions := problem.Initialize(popSize, b.rng)
	if len(solutions) != popSize {
		return nil, fmt.Errorf("%w: %s initialized %d solutions, want %d", framework.ErrInvalidConfiguration, problem.Name(), len(solutions), popSize)
	}

	population := make([]*framework.Individual, popSize)
	for i, s := range solutions {
		population[i] = framework.NewIndividual(s)
		if err := b.evaluate(population[i]); err != nil {
			return nil, err
		}
	}
	return population, nil
}

// offspring breeds up to pairs pairs of children. Before every pair the
// budget and ctx are checked; breeding stops early once either says so.
func (b *breeder) offspring(ctx context.Context, population []*framework.Individual, pairs int, selectParent func([]*framework.Individual) (*framework.Individual, error)) ([]*framework.Individual, error) {
	children := make([]*framework.Individual, 0, 2*pairs)
	for i := 0; i < pairs && !b.exhausted(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parent1, err := selectParent(population)
		if err != nil {
			return nil, err
		}
		parent2, err := selectParent(population)
		if err != nil {
			return nil, err
		}

		s1, s2, err := b.variation.Crossover(parent1.Solution, parent2.Solution, b.rng)
		if err != nil {
			return nil, wrapVariation(err)
		}
		for _, s := range []framework.Solution{s1, s2} {
			if err := b.variation.Mutate(s, b.rng); err != nil {
				return nil, wrapVariation(err)
			}
			child := framework.NewIndividual(s)
			if err := b.evaluate(child); err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}
	return children, nil
}

func wrapVariation(err error) error {
	if errors.Is(err, framework.ErrVariation) {
		return err
	}
	return fmt.Errorf("%w: %w", framework.ErrVariation, err)
}
