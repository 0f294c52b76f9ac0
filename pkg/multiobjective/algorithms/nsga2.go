package algorithms

import (
	"context"
	"math"
	"slices"
	"sort"

	"k8s.io/klog/v2"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

const (
	NSGAIIName = "NSGA-II"
)

// NSGAII is the reference NSGA-II algorithm run on the same budget, operators
// and random stream as the WeiPS variants. The weight related fields of the
// args are ignored.
type NSGAII struct {
	args    *v1alpha1.WeipsArgs
	problem framework.Problem
	opts    *options
}

var _ framework.Algorithm = &NSGAII{}

// NewNSGAII creates a new instance of NSGA-II with given parameters
func NewNSGAII(args *v1alpha1.WeipsArgs, problem framework.Problem, opts ...Option) (*NSGAII, error) {
	args, o, err := setup(args, problem, opts)
	if err != nil {
		return nil, err
	}
	return &NSGAII{args: args, problem: problem, opts: o}, nil
}

func (n *NSGAII) Name() string {
	return NSGAIIName
}

// ranking holds the NSGA-II rank and crowding distance of the current population.
type ranking struct {
	rank     map[*framework.Individual]int
	distance map[*framework.Individual]float64
}

func newRanking() *ranking {
	return &ranking{
		rank:     map[*framework.Individual]int{},
		distance: map[*framework.Individual]float64{},
	}
}

// crowdingDistance calculates crowding distance for individuals in a front
func (r *ranking) crowdingDistance(front []*framework.Individual) {
	if len(front) <= 2 {
		for _, ind := range front {
			r.distance[ind] = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Objectives)
	for _, ind := range front {
		r.distance[ind] = 0
	}

	sorted := slices.Clone(front)
	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Objectives[m] < sorted[j].Objectives[m]
		})

		// Set boundary points to infinity
		r.distance[sorted[0]] = math.Inf(1)
		r.distance[sorted[len(sorted)-1]] = math.Inf(1)

		objectiveRange := sorted[len(sorted)-1].Objectives[m] - sorted[0].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(sorted)-1; i++ {
			r.distance[sorted[i]] += (sorted[i+1].Objectives[m] - sorted[i-1].Objectives[m]) / objectiveRange
		}
	}
}

// better reports whether a wins a crowded-comparison tournament against b.
func (r *ranking) better(a, b *framework.Individual) bool {
	return r.rank[a] < r.rank[b] || (r.rank[a] == r.rank[b] && r.distance[a] > r.distance[b])
}

// Run executes the NSGA-II algorithm until the evaluation budget is exhausted.
func (n *NSGAII) Run(ctx context.Context) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", n.Name(), "problem", n.problem.Name())
	popSize := n.args.PopulationSize
	rng := n.opts.rng

	b := newBreeder(n.opts, n.args.MaxEvaluations)
	population, err := b.initialize(n.problem, popSize)
	if err != nil {
		return nil, err
	}
	rk := newRanking()
	for i, front := range framework.NonDominatedSort(population) {
		for _, ind := range front {
			rk.rank[ind] = i
		}
		rk.crowdingDistance(front)
	}

	selectParent := func(pool []*framework.Individual) (*framework.Individual, error) {
		if len(pool) == 0 {
			return nil, framework.ErrEmptyPool
		}
		best := pool[rng.IntN(len(pool))]
		for i := 1; i < n.args.TournamentSize; i++ {
			contestant := pool[rng.IntN(len(pool))]
			if rk.better(contestant, best) {
				best = contestant
			}
		}
		return best, nil
	}

	pairs := max(popSize/2, 1)
	generations := 0
	for !b.exhausted() {
		offspring, err := b.offspring(ctx, population, pairs, selectParent)
		if err != nil {
			return nil, err
		}

		// Combine populations
		combined := append(slices.Clone(population), offspring...)
		fronts := framework.NonDominatedSort(combined)

		// Clear population for next generation
		population = make([]*framework.Individual, 0, popSize)
		rk = newRanking()

		// Add fronts to new population
		frontIndex := 0
		for frontIndex < len(fronts) && len(population)+len(fronts[frontIndex]) <= popSize {
			rk.crowdingDistance(fronts[frontIndex])
			for _, ind := range fronts[frontIndex] {
				rk.rank[ind] = frontIndex
			}
			population = append(population, fronts[frontIndex]...)
			frontIndex++
		}

		// If needed, add remaining individuals based on crowding distance
		if len(population) < popSize && frontIndex < len(fronts) {
			last := slices.Clone(fronts[frontIndex])
			rk.crowdingDistance(last)
			sort.SliceStable(last, func(i, j int) bool {
				return rk.distance[last[i]] > rk.distance[last[j]]
			})
			for _, ind := range last[:popSize-len(population)] {
				rk.rank[ind] = frontIndex
				population = append(population, ind)
			}
		}
		generations++

		logger.V(4).Info("Generation complete", "generation", generations, "evaluations", b.evaluations, "fronts", len(fronts))
		if n.opts.onGeneration != nil {
			n.opts.onGeneration(GenerationStats{
				Generation:   generations,
				Evaluations:  b.evaluations,
				NonDominated: len(fronts[0]),
				Dominated:    len(combined) - len(fronts[0]),
			})
		}
	}

	fronts := framework.NonDominatedSort(population)
	logger.V(2).Info("Run terminated", "evaluations", b.evaluations, "generations", generations, "front", len(fronts[0]))
	return &Result{
		Front:       fronts[0],
		Population:  population,
		Evaluations: b.evaluations,
		Generations: generations,
	}, nil
}
