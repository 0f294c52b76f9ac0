package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

func TestIGD(t *testing.T) {
	reference := []framework.ObjectiveSpacePoint{{0, 1}, {0.5, 0.5}, {1, 0}}

	assert.Zero(t, IGD(reference, reference))
	// Only {0, 1} is found: distances are 0, sqrt(0.5) and sqrt(2)
	want := (0 + math.Sqrt(0.5) + math.Sqrt(2)) / 3
	assert.InDelta(t, want, IGD([]framework.ObjectiveSpacePoint{{0, 1}}, reference), 1e-12)

	assert.True(t, math.IsNaN(IGD(nil, reference)))
	assert.True(t, math.IsNaN(IGD(reference, nil)))
}

func TestHypervolume2D(t *testing.T) {
	ref := framework.ObjectiveSpacePoint{1, 1}
	tests := []struct {
		name  string
		front []framework.ObjectiveSpacePoint
		want  float64
	}{
		{"empty", nil, 0},
		{"ideal point", []framework.ObjectiveSpacePoint{{0, 0}}, 1},
		{"two points", []framework.ObjectiveSpacePoint{{0.5, 0}, {0, 0.5}}, 0.75},
		{"dominated point adds nothing", []framework.ObjectiveSpacePoint{{0.5, 0}, {0, 0.5}, {0.6, 0.6}}, 0.75},
		{"points beyond the reference are ignored", []framework.ObjectiveSpacePoint{{0, 0.5}, {1.5, 0}}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Hypervolume2D(tt.front, ref), 1e-12)
		})
	}
}

func TestPoints(t *testing.T) {
	ind := &framework.Individual{Objectives: []float64{1, 2}}
	points := Points([]*framework.Individual{ind})
	points[0][0] = 5
	assert.Equal(t, []float64{1, 2}, ind.Objectives)
}
