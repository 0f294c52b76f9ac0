/*
Copyright 2024 The WeiPS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/weips/weips/apis/config/v1alpha1"
)

func TestDecodeArgs(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *v1alpha1.WeipsArgs
		wantErr bool
	}{
		{
			name: "defaults are applied",
			data: `
apiVersion: weips.io/v1alpha1
kind: WeipsArgs
populationSize: 50
strategy: Grips
extremesElitism: true
`,
			want: &v1alpha1.WeipsArgs{
				PopulationSize:             50,
				MaxEvaluations:             v1alpha1.DefaultMaxEvaluations,
				NumWeights:                 50,
				TournamentSize:             v1alpha1.DefaultTournamentSize,
				ExtremesElitism:            ptr.To(true),
				Strategy:                   v1alpha1.StrategyGrips,
				CrossoverProbability:       ptr.To(v1alpha1.DefaultCrossoverProbability),
				CrossoverDistributionIndex: v1alpha1.DefaultCrossoverDistributionIndex,
				MutationDistributionIndex:  v1alpha1.DefaultMutationDistributionIndex,
			},
		},
		{
			name: "explicit values are kept",
			data: `
apiVersion: weips.io/v1alpha1
kind: WeipsArgs
populationSize: 100
maxEvaluations: 1000
numWeights: 24
tournamentSize: 2
strategy: StratGrips
mutationProbability: 0.05
seed: 7
`,
			want: &v1alpha1.WeipsArgs{
				PopulationSize:             100,
				MaxEvaluations:             1000,
				NumWeights:                 24,
				TournamentSize:             2,
				ExtremesElitism:            ptr.To(false),
				Strategy:                   v1alpha1.StrategyStratGrips,
				CrossoverProbability:       ptr.To(v1alpha1.DefaultCrossoverProbability),
				CrossoverDistributionIndex: v1alpha1.DefaultCrossoverDistributionIndex,
				MutationProbability:        ptr.To(0.05),
				MutationDistributionIndex:  v1alpha1.DefaultMutationDistributionIndex,
				Seed:                       7,
			},
		},
		{
			name: "unknown fields are rejected",
			data: `
apiVersion: weips.io/v1alpha1
kind: WeipsArgs
populationSise: 50
`,
			wantErr: true,
		},
		{
			name: "other kinds are rejected",
			data: `
apiVersion: weips.io/v1alpha1
kind: WeipsRunList
items: []
`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArgs([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// Only the fields are compared.
			got.TypeMeta = tt.want.TypeMeta
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeArgs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weips.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiVersion: weips.io/v1alpha1\nkind: WeipsArgs\ntournamentSize: 5\n"), 0o644))

	args, err := LoadArgs(path)
	require.NoError(t, err)
	assert.Equal(t, 5, args.TournamentSize)
	assert.Equal(t, v1alpha1.DefaultPopulationSize, args.PopulationSize)

	_, err = LoadArgs(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadArgsWithoutDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weips.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiVersion: weips.io/v1alpha1\nkind: WeipsArgs\npopulationSize: 60\n"), 0o644))

	args, err := LoadArgsWithoutDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, 60, args.PopulationSize)
	assert.Zero(t, args.NumWeights)
	assert.Nil(t, args.ExtremesElitism)

	args.PopulationSize = 30
	Scheme.Default(args)
	assert.Equal(t, 30, args.NumWeights)

	require.NoError(t, os.WriteFile(path, []byte("apiVersion: weips.io/v1alpha1\nkind: WeipsArgs\npopulationSise: 60\n"), 0o644))
	_, err = LoadArgsWithoutDefaults(path)
	assert.Error(t, err)
}

func TestDefaultArgs(t *testing.T) {
	args := DefaultArgs()
	assert.Equal(t, v1alpha1.DefaultPopulationSize, args.PopulationSize)
	assert.Equal(t, args.PopulationSize, args.NumWeights)
	assert.Equal(t, v1alpha1.StrategyRawps, args.Strategy)
	assert.False(t, *args.ExtremesElitism)
	assert.Nil(t, args.MutationProbability)
}
