package algorithms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

type failingComparator struct{}

func (failingComparator) Compare(_, _ *framework.Individual) (int, error) {
	return 0, framework.ErrDimensionMismatch
}

func TestTournamentSizeLargerThanPool(t *testing.T) {
	pool := []*framework.Individual{ind(0, 3, 3), ind(1, 1, 1), ind(2, 2, 2)}
	tour := NewTournament(10, &fixedComparator{}, testRand())

	for i := 0; i < 20; i++ {
		winner, err := tour.Select(pool)
		require.NoError(t, err)
		assert.Same(t, pool[1], winner)
	}
	assert.Len(t, pool, 3)
}

func TestTournamentSizeOneSkipsComparator(t *testing.T) {
	cmp := &fixedComparator{}
	pool := []*framework.Individual{ind(0, 3, 3), ind(1, 1, 1), ind(2, 2, 2)}

	for _, size := range []int{1, 0, -3} {
		tour := NewTournament(size, cmp, testRand())
		winner, err := tour.Select(pool)
		require.NoError(t, err)
		assert.Contains(t, pool, winner)
	}
	assert.Zero(t, cmp.calls)
}

func TestTournamentSingleCandidatePool(t *testing.T) {
	cmp := &fixedComparator{}
	pool := []*framework.Individual{ind(0, 1, 1)}
	winner, err := NewTournament(3, cmp, testRand()).Select(pool)
	require.NoError(t, err)
	assert.Same(t, pool[0], winner)
	assert.Zero(t, cmp.calls)
}

func TestTournamentSelectAndRemove(t *testing.T) {
	pool := []*framework.Individual{ind(0, 1, 1), ind(1, 2, 2), ind(2, 3, 3), ind(3, 4, 4), ind(4, 5, 5)}
	tour := NewTournament(2, &fixedComparator{}, testRand())

	seen := map[*framework.Individual]bool{}
	for i := 0; i < 5; i++ {
		winner, err := tour.SelectAndRemove(&pool)
		require.NoError(t, err)
		assert.False(t, seen[winner], "individual %v returned twice", winner.Objectives)
		seen[winner] = true
		assert.Len(t, pool, 4-i)
		assert.NotContains(t, pool, winner)
	}

	_, err := tour.SelectAndRemove(&pool)
	assert.True(t, errors.Is(err, framework.ErrEmptyPool), "got %v", err)
}

func TestTournamentEmptyPool(t *testing.T) {
	_, err := NewTournament(2, &fixedComparator{}, testRand()).Select(nil)
	assert.True(t, errors.Is(err, framework.ErrEmptyPool), "got %v", err)
}

func TestTournamentComparatorError(t *testing.T) {
	pool := []*framework.Individual{ind(0, 1, 1), ind(1, 2, 2)}
	tour := NewTournament(2, failingComparator{}, testRand())

	_, err := tour.SelectAndRemove(&pool)
	assert.True(t, errors.Is(err, framework.ErrDimensionMismatch), "got %v", err)
	assert.Len(t, pool, 2, "pool must be untouched on error")
}
