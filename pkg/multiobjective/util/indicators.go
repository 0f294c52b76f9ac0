package util

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// Points returns the objective vectors of individuals.
func Points(individuals []*framework.Individual) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(individuals))
	for i, ind := range individuals {
		points[i] = slices.Clone(ind.Objectives)
	}
	return points
}

// IGD is the inverted generational distance: the mean Euclidean distance
// from every reference point to its nearest point of front. It returns NaN
// when either set is empty.
func IGD(front, reference []framework.ObjectiveSpacePoint) float64 {
	if len(front) == 0 || len(reference) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, r := range reference {
		nearest := math.Inf(1)
		for _, p := range front {
			nearest = math.Min(nearest, floats.Distance(r, p, 2))
		}
		sum += nearest
	}
	return sum / float64(len(reference))
}

// Hypervolume2D is the area dominated by a bi-objective front and bounded by
// ref. Points that do not strictly dominate ref contribute nothing.
func Hypervolume2D(front []framework.ObjectiveSpacePoint, ref framework.ObjectiveSpacePoint) float64 {
	points := make([]framework.ObjectiveSpacePoint, 0, len(front))
	for _, p := range front {
		if len(p) == 2 && p[0] < ref[0] && p[1] < ref[1] {
			points = append(points, p)
		}
	}
	slices.SortFunc(points, func(a, b framework.ObjectiveSpacePoint) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	volume := 0.0
	bound := ref[1]
	for _, p := range points {
		// Skip points dominated by one already swept
		if p[1] >= bound {
			continue
		}
		volume += (ref[0] - p[0]) * (bound - p[1])
		bound = p[1]
	}
	return volume
}
