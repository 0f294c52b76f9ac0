package algorithms

import (
	"math/rand/v2"
	"slices"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// Tournament picks the best of size distinct, uniformly sampled candidates.
type Tournament struct {
	size       int
	comparator Comparator
	rng        *rand.Rand
}

// NewTournament returns a tournament of the given size. Sizes below one are treated as one.
func NewTournament(size int, comparator Comparator, rng *rand.Rand) *Tournament {
	return &Tournament{
		size:       max(size, 1),
		comparator: comparator,
		rng:        rng,
	}
}

// Select returns the tournament winner and leaves pool unchanged.
func (t *Tournament) Select(pool []*framework.Individual) (*framework.Individual, error) {
	_, winner, err := t.run(pool)
	return winner, err
}

// SelectAndRemove returns the tournament winner and removes it from the pool,
// so repeated calls never return the same individual twice.
func (t *Tournament) SelectAndRemove(pool *[]*framework.Individual) (*framework.Individual, error) {
	i, winner, err := t.run(*pool)
	if err != nil {
		return nil, err
	}
	*pool = slices.Delete(*pool, i, i+1)
	return winner, nil
}

func (t *Tournament) run(pool []*framework.Individual) (int, *framework.Individual, error) {
	if len(pool) == 0 {
		return 0, nil, framework.ErrEmptyPool
	}

	k := min(t.size, len(pool))
	candidates := t.rng.Perm(len(pool))[:k]
	best := candidates[0]
	if k == 1 {
		return best, pool[best], nil
	}

	for _, i := range candidates[1:] {
		flag, err := t.comparator.Compare(pool[i], pool[best])
		if err != nil {
			return 0, nil, err
		}
		if flag < 0 {
			best = i
		}
	}
	return best, pool[best], nil
}
