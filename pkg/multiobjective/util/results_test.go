package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/benchmarks"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

func front() []*framework.Individual {
	infeasible := &framework.Individual{
		Solution:   framework.NewRealSolution([]float64{0.1, 0}, nil),
		Objectives: []float64{0.1, 10},
		Violation:  5.2,
	}
	return []*framework.Individual{
		{Solution: framework.NewRealSolution([]float64{0.5, 0.25}, nil), Objectives: []float64{0.5, 2.5}},
		infeasible,
		{Solution: framework.NewRealSolution([]float64{1, 0}, nil), Objectives: []float64{1, 1}},
	}
}

func TestWriteFUNSkipsInfeasible(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFUN(&buf, front()))
	assert.Equal(t, "0.5 2.5\n1 1\n", buf.String())
}

func TestWriteVAR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVAR(&buf, front()))
	assert.Equal(t, "0.5 0.25\n0.1 0\n1 0\n", buf.String())
}

func TestFeasible(t *testing.T) {
	got := Feasible(front())
	require.Len(t, got, 2)
	assert.Equal(t, []float64{0.5, 1}, []float64{got[0].Objectives[0], got[1].Objectives[0]})
	assert.Empty(t, Feasible(nil))
}

func TestSaveRun(t *testing.T) {
	dir := t.TempDir()
	start := metav1.NewTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	run := &v1alpha1.WeipsRun{
		TypeMeta:   metav1.TypeMeta{APIVersion: v1alpha1.SchemeGroupVersion.String(), Kind: "WeipsRun"},
		ObjectMeta: metav1.ObjectMeta{Name: "ConstrEx-Grips-3"},
		Spec: v1alpha1.WeipsRunSpec{
			Algorithm: "Grips",
			Problem:   "ConstrEx",
			Run:       3,
			Args: v1alpha1.WeipsArgs{
				PopulationSize:  100,
				MaxEvaluations:  25000,
				NumWeights:      100,
				TournamentSize:  3,
				ExtremesElitism: ptr.To(true),
				Strategy:        v1alpha1.StrategyGrips,
			},
		},
		Status: v1alpha1.WeipsRunStatus{
			Phase:       v1alpha1.RunPhaseTerminated,
			Evaluations: 25000,
			Generations: 249,
			StartTime:   &start,
			Solutions:   Solutions(front()),
		},
	}

	require.NoError(t, SaveRun(dir, run, front()))

	fun, err := os.ReadFile(filepath.Join(dir, "FUN.3"))
	require.NoError(t, err)
	assert.Equal(t, "0.5 2.5\n1 1\n", string(fun))
	vars, err := os.ReadFile(filepath.Join(dir, "VAR.3"))
	require.NoError(t, err)
	assert.Equal(t, "0.5 0.25\n1 0\n", string(vars), "VAR lines must match FUN lines")

	loaded, err := LoadRun(filepath.Join(dir, "run.3.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(run, loaded); diff != "" {
		t.Errorf("run record mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveRunWithoutFront(t *testing.T) {
	dir := t.TempDir()
	run := &v1alpha1.WeipsRun{Spec: v1alpha1.WeipsRunSpec{Run: 0}, Status: v1alpha1.WeipsRunStatus{Phase: v1alpha1.RunPhaseFailed}}

	require.NoError(t, SaveRun(dir, run, nil))
	assert.NoFileExists(t, filepath.Join(dir, "FUN.0"))
	assert.FileExists(t, filepath.Join(dir, "run.0.yaml"))
}

func TestPlotResults(t *testing.T) {
	dir := t.TempDir()
	problem := benchmarks.NewZDT1(3)

	path, err := PlotResults(dir, []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}, problem, "Grips")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ZDT1_Grips_results.html"), path)
	assert.FileExists(t, path)

	_, err = PlotResults(dir, nil, problem, "Grips")
	assert.Error(t, err)

	_, err = PlotResults(dir, []framework.ObjectiveSpacePoint{{0, 1, 2}}, problem, "Grips")
	assert.Error(t, err)
}
