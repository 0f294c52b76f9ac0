package algorithms

import (
	"fmt"
	"math/rand/v2"

	"github.com/patrickmn/go-cache"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/apis/config/validation"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

// GenerationStats summarizes one completed generation.
type GenerationStats struct {
	Generation   int
	Evaluations  int
	NonDominated int
	Dominated    int
}

// Result is the outcome of a run.
type Result struct {
	// Front is the first non-dominated front of the final population.
	Front []*framework.Individual
	// Population is the final population.
	Population  []*framework.Individual
	Evaluations int
	Generations int
}

// Option customizes an algorithm at construction time.
type Option func(*options)

type options struct {
	evaluator    framework.Evaluator
	variation    framework.Variation
	rng          *rand.Rand
	weightCache  *cache.Cache
	onGeneration func(GenerationStats)
}

// WithEvaluator replaces the evaluator built from the problem.
func WithEvaluator(e framework.Evaluator) Option {
	return func(o *options) { o.evaluator = e }
}

// WithVariation replaces the SBX / polynomial mutation operators built from the args.
func WithVariation(v framework.Variation) Option {
	return func(o *options) { o.variation = v }
}

// WithRand sets the random stream owned by the run. By default a PCG stream
// seeded with args.Seed is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithWeightCache memoizes grid lattices in c, which may be shared between runs.
func WithWeightCache(c *cache.Cache) Option {
	return func(o *options) { o.weightCache = c }
}

// WithGenerationCallback registers f to be called after every generation.
func WithGenerationCallback(f func(GenerationStats)) Option {
	return func(o *options) { o.onGeneration = f }
}

// NewRand returns the PCG stream used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// setup validates the args and fills the options every algorithm needs.
func setup(args *v1alpha1.WeipsArgs, problem framework.Problem, opts []Option) (*v1alpha1.WeipsArgs, *options, error) {
	if problem == nil {
		return nil, nil, fmt.Errorf("%w: problem is required", framework.ErrInvalidConfiguration)
	}
	if errs := validation.ValidateWeipsArgs(nil, args); len(errs) > 0 {
		return nil, nil, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}
	if n := len(problem.ObjectiveFuncs()); n < 2 {
		return nil, nil, fmt.Errorf("%w: %s has %d objectives, at least 2 are required", framework.ErrInvalidConfiguration, problem.Name(), n)
	}
	args = args.DeepCopy()

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = NewRand(args.Seed)
	}
	if o.evaluator == nil {
		o.evaluator = framework.NewProblemEvaluator(problem)
	}
	if o.variation == nil {
		crossover := v1alpha1.DefaultCrossoverProbability
		if args.CrossoverProbability != nil {
			crossover = *args.CrossoverProbability
		}
		o.variation = &framework.DefaultVariation{
			CrossoverProbability:       crossover,
			CrossoverDistributionIndex: args.CrossoverDistributionIndex,
			MutationProbability:        args.MutationProbability,
			MutationDistributionIndex:  args.MutationDistributionIndex,
		}
	}
	return args, o, nil
}
