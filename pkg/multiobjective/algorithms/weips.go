package algorithms

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
	"github.com/weips/weips/pkg/multiobjective/weights"
)

// Weips is the weight-based Pareto selection algorithm. Survivors are chosen
// from the strictly non-dominated set of parents and offspring, and ties on
// the population budget are broken by tournaments with a stochastic
// weighted-sum comparator.
type Weips struct {
	args          *v1alpha1.WeipsArgs
	problem       framework.Problem
	strategy      weights.Strategy
	numObjectives int
	opts          *options
	phase         v1alpha1.RunPhase
}

var _ framework.Algorithm = &Weips{}

// NewWeips validates the (already defaulted) args and prepares a run. Setup
// errors wrap framework.ErrInvalidConfiguration.
func NewWeips(args *v1alpha1.WeipsArgs, problem framework.Problem, opts ...Option) (*Weips, error) {
	args, o, err := setup(args, problem, opts)
	if err != nil {
		return nil, err
	}
	strategy, err := weights.ForName(string(args.Strategy), o.weightCache)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, err)
	}

	return &Weips{
		args:          args,
		problem:       problem,
		strategy:      strategy,
		numObjectives: len(problem.ObjectiveFuncs()),
		opts:          o,
		phase:         v1alpha1.RunPhaseInitializing,
	}, nil
}

// Name returns the variant name, which is the weight strategy.
func (w *Weips) Name() string {
	return w.strategy.Name()
}

// Phase returns the current phase of the run.
func (w *Weips) Phase() v1alpha1.RunPhase {
	return w.phase
}

// Run executes the algorithm until the evaluation budget is exhausted.
// The only point where ctx is honoured is right before a new pair of
// offspring is bred. Any error aborts the run without a partial result.
func (w *Weips) Run(ctx context.Context) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", w.Name(), "problem", w.problem.Name())
	res, err := w.run(ctx, logger)
	if err != nil {
		w.phase = v1alpha1.RunPhaseFailed
		return nil, err
	}
	return res, nil
}

func (w *Weips) run(ctx context.Context, logger logr.Logger) (*Result, error) {
	w.phase = v1alpha1.RunPhaseInitializing
	matrix, err := w.strategy.Generate(w.numObjectives, w.args.NumWeights, w.opts.rng)
	if err != nil {
		return nil, fmt.Errorf("building %s weight matrix: %w", w.strategy.Name(), err)
	}
	logger.V(2).Info("Built weight matrix", "numWeights", w.args.NumWeights, "rows", len(matrix))

	tournament := NewTournament(w.args.TournamentSize, NewWeightedComparator(matrix, w.opts.rng), w.opts.rng)
	repl := &replacement{
		popSize:         w.args.PopulationSize,
		numObjectives:   w.numObjectives,
		extremesElitism: ptr.Deref(w.args.ExtremesElitism, false),
		tournament:      tournament,
		logger:          logger,
	}

	b := newBreeder(w.opts, w.args.MaxEvaluations)
	population, err := b.initialize(w.problem, w.args.PopulationSize)
	if err != nil {
		return nil, err
	}

	// A population of one still breeds one pair per generation.
	pairs := max(w.args.PopulationSize/2, 1)
	generations := 0

	w.phase = v1alpha1.RunPhaseEvolving
	for !b.exhausted() {
		offspring, err := b.offspring(ctx, population, pairs, tournament.Select)
		if err != nil {
			return nil, err
		}

		union := append(slices.Clone(population), offspring...)
		part := framework.Partition(union)
		population, err = repl.fill(part)
		if err != nil {
			return nil, fmt.Errorf("replacement in generation %d: %w", generations+1, err)
		}
		generations++

		logger.V(4).Info("Generation complete", "generation", generations, "evaluations", b.evaluations,
			"nonDominated", len(part.NonDominated), "dominated", len(part.Dominated))
		if w.opts.onGeneration != nil {
			w.opts.onGeneration(GenerationStats{
				Generation:   generations,
				Evaluations:  b.evaluations,
				NonDominated: len(part.NonDominated),
				Dominated:    len(part.Dominated),
			})
		}
	}
	w.phase = v1alpha1.RunPhaseTerminated

	fronts := framework.NonDominatedSort(population)
	logger.V(2).Info("Run terminated", "evaluations", b.evaluations, "generations", generations, "front", len(fronts[0]))
	return &Result{
		Front:       fronts[0],
		Population:  population,
		Evaluations: b.evaluations,
		Generations: generations,
	}, nil
}
