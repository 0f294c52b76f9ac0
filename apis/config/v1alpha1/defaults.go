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

package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

const (
	DefaultPopulationSize             = 100
	DefaultMaxEvaluations             = 25000
	DefaultTournamentSize             = 3
	DefaultCrossoverProbability       = 0.9
	DefaultCrossoverDistributionIndex = 20.0
	DefaultMutationDistributionIndex  = 20.0
)

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "kind", "WeipsArgs")
	scheme.AddTypeDefaultingFunc(&WeipsArgs{}, func(obj interface{}) {
		SetDefaults_WeipsArgs(obj.(*WeipsArgs))
	})
	return nil
}

// SetDefaults_WeipsArgs fills every unset field. NumWeights follows
// PopulationSize, the MutationProbability stays unset and is resolved
// against the problem at run time.
func SetDefaults_WeipsArgs(args *WeipsArgs) {
	if args.PopulationSize == 0 {
		args.PopulationSize = DefaultPopulationSize
	}
	if args.MaxEvaluations == 0 {
		args.MaxEvaluations = DefaultMaxEvaluations
	}
	if args.NumWeights == 0 {
		args.NumWeights = args.PopulationSize
	}
	if args.TournamentSize == 0 {
		args.TournamentSize = DefaultTournamentSize
	}
	if args.ExtremesElitism == nil {
		args.ExtremesElitism = ptr.To(false)
	}
	if args.Strategy == "" {
		args.Strategy = StrategyRawps
	}
	if args.CrossoverProbability == nil {
		args.CrossoverProbability = ptr.To(DefaultCrossoverProbability)
	}
	if args.CrossoverDistributionIndex == 0 {
		args.CrossoverDistributionIndex = DefaultCrossoverDistributionIndex
	}
	if args.MutationDistributionIndex == 0 {
		args.MutationDistributionIndex = DefaultMutationDistributionIndex
	}
}
