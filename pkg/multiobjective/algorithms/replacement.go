package algorithms

import (
	"slices"

	"github.com/go-logr/logr"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// replacement fills the next population from a dominance partition.
type replacement struct {
	popSize         int
	numObjectives   int
	extremesElitism bool
	tournament      *Tournament
	logger          logr.Logger
}

// fill returns exactly popSize individuals:
//   - fewer non-dominated than popSize: all of them, topped up by tournaments
//     without replacement over the dominated ones;
//   - more: optionally the per-objective extremes first, then tournaments
//     without replacement over the remaining non-dominated ones;
//   - exactly popSize: the non-dominated set as is.
func (r *replacement) fill(part framework.DominancePartition) ([]*framework.Individual, error) {
	next := make([]*framework.Individual, 0, r.popSize)
	remain := r.popSize

	switch {
	case len(part.NonDominated) < r.popSize:
		r.logger.V(5).Info("Topping up from dominated", "nonDominated", len(part.NonDominated), "missing", r.popSize-len(part.NonDominated))
		next = append(next, part.NonDominated...)
		remain -= len(part.NonDominated)
		pool := slices.Clone(part.Dominated)
		return r.topUp(next, &pool, remain)

	case len(part.NonDominated) > r.popSize:
		r.logger.V(5).Info("Truncating non-dominated", "nonDominated", len(part.NonDominated), "extremesElitism", r.extremesElitism)
		pool := slices.Clone(part.NonDominated)
		if r.extremesElitism {
			for k := 0; k < min(remain, r.numObjectives); k++ {
				next = append(next, extractBest(&pool, k))
			}
			remain -= len(next)
		}
		return r.topUp(next, &pool, remain)

	default:
		return append(next, part.NonDominated...), nil
	}
}

func (r *replacement) topUp(next []*framework.Individual, pool *[]*framework.Individual, remain int) ([]*framework.Individual, error) {
	for ; remain > 0; remain-- {
		selected, err := r.tournament.SelectAndRemove(pool)
		if err != nil {
			return nil, err
		}
		next = append(next, selected)
	}
	return next, nil
}

// extractBest removes and returns the individual with the smallest value of
// objective obj. Ties go to the first one found.
func extractBest(pool *[]*framework.Individual, obj int) *framework.Individual {
	best := 0
	for i := 1; i < len(*pool); i++ {
		if (*pool)[i].Objectives[obj] < (*pool)[best].Objectives[obj] {
			best = i
		}
	}
	ind := (*pool)[best]
	*pool = slices.Delete(*pool, best, best+1)
	return ind
}
