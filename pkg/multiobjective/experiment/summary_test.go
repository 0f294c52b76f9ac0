package experiment

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weips/weips/pkg/multiobjective/algorithms"
	"github.com/weips/weips/pkg/multiobjective/benchmarks"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

func TestSummarize(t *testing.T) {
	zdt1, dtlz2 := benchmarks.NewZDT1(3), benchmarks.NewDTLZ2(4, 3)
	result := func(evaluations, front int) *algorithms.Result {
		return &algorithms.Result{Evaluations: evaluations, Front: make([]*framework.Individual, front)}
	}
	results := []RunResult{
		{Case: Case{Algorithm: "Grips", Problem: zdt1}, Result: result(100, 4), IGD: 1, Hypervolume: 0.5},
		{Case: Case{Algorithm: "Grips", Problem: zdt1}, Result: result(100, 6), IGD: 3, Hypervolume: 0.7},
		{Case: Case{Algorithm: "Grips", Problem: zdt1}, Err: errors.New("boom"), IGD: math.NaN(), Hypervolume: math.NaN()},
		{Case: Case{Algorithm: "Rawps", Problem: dtlz2}, Result: result(200, 10), IGD: 0.2, Hypervolume: math.NaN()},
	}

	got := Summarize(results)
	require.Len(t, got, 2)

	grips := got[0]
	assert.Equal(t, "Grips", grips.Algorithm)
	assert.Equal(t, benchmarks.ZDT1Name, grips.Problem)
	assert.Equal(t, 3, grips.Runs)
	assert.Equal(t, 1, grips.Failed)
	assert.Equal(t, 100.0, grips.MeanEvaluations)
	assert.Equal(t, 5.0, grips.MeanFrontSize)
	assert.InDelta(t, 2.0, grips.MeanIGD, 1e-12)
	assert.InDelta(t, math.Sqrt2, grips.StdIGD, 1e-12)
	assert.InDelta(t, 0.6, grips.MeanHypervolume, 1e-12)

	rawps := got[1]
	assert.Equal(t, 0.2, rawps.MeanIGD)
	assert.Zero(t, rawps.StdIGD)
	assert.True(t, math.IsNaN(rawps.MeanHypervolume))
}
