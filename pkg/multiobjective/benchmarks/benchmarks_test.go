package benchmarks

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

func evaluate(t *testing.T, p framework.Problem, vars ...float64) *framework.Individual {
	t.Helper()
	ind := framework.NewIndividual(framework.NewRealSolution(vars, p.Bounds()))
	require.NoError(t, framework.NewProblemEvaluator(p).Evaluate(ind))
	return ind
}

func TestForName(t *testing.T) {
	for _, name := range Names() {
		p, err := ForName(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	p, err := ForName("zdt3")
	require.NoError(t, err)
	assert.Equal(t, ZDT3Name, p.Name())

	_, err = ForName("WFG1")
	assert.True(t, errors.Is(err, ErrUnknownProblem), "got %v", err)
}

func TestInitialize(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := ForName(name)
			require.NoError(t, err)

			first := p.Initialize(20, rand.New(rand.NewPCG(1, 1)))
			second := p.Initialize(20, rand.New(rand.NewPCG(1, 1)))
			require.Len(t, first, 20)
			assert.Equal(t, first, second, "same stream, same population")

			for _, s := range first {
				vars := s.Values()
				require.Len(t, vars, len(p.Bounds()))
				for i, b := range p.Bounds() {
					assert.GreaterOrEqual(t, vars[i], b.L)
					assert.LessOrEqual(t, vars[i], b.H)
				}
			}
		})
	}
}

func TestZDTOnFront(t *testing.T) {
	tests := []struct {
		problem framework.Problem
		want    []float64
	}{
		{NewZDT1(4), []float64{0.25, 0.5}},
		{NewZDT2(4), []float64{0.25, 0.9375}},
		{NewZDT3(4), []float64{0.25, 0.5 - 0.25*math.Sin(2.5*math.Pi)}},
	}
	for _, tt := range tests {
		t.Run(tt.problem.Name(), func(t *testing.T) {
			ind := evaluate(t, tt.problem, 0.25, 0, 0, 0)
			assert.InDeltaSlice(t, tt.want, ind.Objectives, 1e-12)
			assert.True(t, ind.Feasible())
		})
	}
}

func TestDTLZ2OnFront(t *testing.T) {
	p := NewDTLZ2(7, 3)
	ind := evaluate(t, p, 0.3, 0.8, 0.5, 0.5, 0.5, 0.5, 0.5)
	sum := 0.0
	for _, f := range ind.Objectives {
		sum += f * f
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	for _, pt := range p.TrueParetoFront(100) {
		assert.InDelta(t, 1.0, pt[0]*pt[0]+pt[1]*pt[1]+pt[2]*pt[2], 1e-12)
	}
}

func TestConstrExViolation(t *testing.T) {
	p := NewConstrEx()

	feasible := evaluate(t, p, 0.8, 0.5)
	assert.True(t, feasible.Feasible())
	assert.InDeltaSlice(t, []float64{0.8, 1.5 / 0.8}, feasible.Objectives, 1e-12)

	// x2 + 9*x1 = 4.5 falls 1.5 short of 6
	infeasible := evaluate(t, p, 0.5, 0)
	assert.InDelta(t, 1.5, infeasible.Violation, 1e-12)

	// both constraints violated
	both := evaluate(t, p, 0.1, 0)
	assert.InDelta(t, (6-0.9)+(1-0.9), both.Violation, 1e-12)
}

func TestTrueParetoFronts(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := ForName(name)
			require.NoError(t, err)
			front := p.TrueParetoFront(100)
			require.NotEmpty(t, front)
			for _, pt := range front {
				assert.Len(t, pt, len(p.ObjectiveFuncs()))
			}
		})
	}
}
