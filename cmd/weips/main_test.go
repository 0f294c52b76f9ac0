package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/benchmarks"
)

func parse(t *testing.T, argv ...string) (*options, *pflag.FlagSet) {
	t.Helper()
	fs := pflag.NewFlagSet("weips", pflag.ContinueOnError)
	o := &options{}
	o.addFlags(fs)
	require.NoError(t, fs.Parse(argv))
	return o, fs
}

func TestArgsDefaults(t *testing.T) {
	o, fs := parse(t)
	args, err := o.args(fs)
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.DefaultPopulationSize, args.PopulationSize)
	assert.Equal(t, v1alpha1.DefaultMaxEvaluations, args.MaxEvaluations)
	assert.Equal(t, []string{benchmarks.ZDT1Name}, o.problems)
	assert.Len(t, o.algorithms, 5)
}

func TestArgsFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weips.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`apiVersion: weips.io/v1alpha1
kind: WeipsArgs
populationSize: 60
maxEvaluations: 6000
strategy: Grips
`), 0o644))

	o, fs := parse(t, "--config", path, "--max-evaluations", "900", "--extremes-elitism", "--seed", "3")
	args, err := o.args(fs)
	require.NoError(t, err)
	assert.Equal(t, 60, args.PopulationSize)
	assert.Equal(t, 60, args.NumWeights)
	assert.Equal(t, 900, args.MaxEvaluations)
	assert.True(t, *args.ExtremesElitism)
	assert.Equal(t, uint64(3), args.Seed)
}

func TestArgsPopulationSizeMovesNumWeights(t *testing.T) {
	o, fs := parse(t, "--population-size", "30")
	args, err := o.args(fs)
	require.NoError(t, err)
	assert.Equal(t, 30, args.PopulationSize)
	assert.Equal(t, 30, args.NumWeights)
}

func TestArgsPopulationSizeWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weips.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiVersion: weips.io/v1alpha1\nkind: WeipsArgs\npopulationSize: 60\n"), 0o644))

	o, fs := parse(t, "--config", path, "--population-size", "30")
	args, err := o.args(fs)
	require.NoError(t, err)
	assert.Equal(t, 30, args.PopulationSize)
	assert.Equal(t, 30, args.NumWeights, "numWeights not set in the file follows the flag")

	require.NoError(t, os.WriteFile(path, []byte("apiVersion: weips.io/v1alpha1\nkind: WeipsArgs\npopulationSize: 60\nnumWeights: 12\n"), 0o644))
	o, fs = parse(t, "--config", path, "--population-size", "30")
	args, err = o.args(fs)
	require.NoError(t, err)
	assert.Equal(t, 12, args.NumWeights, "numWeights set in the file is kept")
}

func TestCases(t *testing.T) {
	o, fs := parse(t, "--problems", "zdt1,dtlz2", "--algorithms", "Grips,NSGA-II,unpas,StratGrips", "--grid-rows", "300")
	args, err := o.args(fs)
	require.NoError(t, err)

	cases, err := o.cases(args)
	require.NoError(t, err)
	require.Len(t, cases, 8)
	assert.Equal(t, benchmarks.ZDT1Name, cases[0].Problem.Name())
	assert.Equal(t, "NSGA-II", cases[1].Algorithm)
	assert.Equal(t, 300, cases[0].Args.NumWeights, "two objectives need 300 levels")
	assert.Equal(t, 300, cases[3].Args.NumWeights)
	assert.Nil(t, cases[1].Args, "NSGA-II keeps the shared args")
	assert.Nil(t, cases[2].Args, "Unpas keeps the shared numWeights")
	assert.Equal(t, 24, cases[4].Args.NumWeights, "three objectives need 24 levels")
	assert.Nil(t, cases[6].Args)

	o, fs = parse(t, "--problems", "WFG1")
	args, err = o.args(fs)
	require.NoError(t, err)
	_, err = o.cases(args)
	assert.Error(t, err)
}
