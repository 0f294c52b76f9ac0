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

package validation

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/weips/weips/apis/config/v1alpha1"
)

// ValidateWeipsArgs checks defaulted WeipsArgs. Every violation is reported,
// not only the first one.
func ValidateWeipsArgs(path *field.Path, args *v1alpha1.WeipsArgs) field.ErrorList {
	var allErrs field.ErrorList
	if args == nil {
		return append(allErrs, field.Required(path, "arguments are required"))
	}

	if args.PopulationSize < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("populationSize"), args.PopulationSize, "must be at least 1"))
	}
	if args.MaxEvaluations < args.PopulationSize {
		allErrs = append(allErrs, field.Invalid(path.Child("maxEvaluations"), args.MaxEvaluations, "must not be less than populationSize"))
	}
	if args.NumWeights < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("numWeights"), args.NumWeights, "must be at least 1"))
	}
	if args.TournamentSize < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("tournamentSize"), args.TournamentSize, "must be at least 1"))
	}
	if !supportedStrategy(args.Strategy) {
		supported := make([]string, len(v1alpha1.SupportedStrategies))
		for i, s := range v1alpha1.SupportedStrategies {
			supported[i] = string(s)
		}
		allErrs = append(allErrs, field.NotSupported(path.Child("strategy"), args.Strategy, supported))
	}

	allErrs = append(allErrs, validateProbability(path.Child("crossoverProbability"), args.CrossoverProbability)...)
	allErrs = append(allErrs, validateProbability(path.Child("mutationProbability"), args.MutationProbability)...)
	if args.CrossoverDistributionIndex < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("crossoverDistributionIndex"), args.CrossoverDistributionIndex, "must not be negative"))
	}
	if args.MutationDistributionIndex < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("mutationDistributionIndex"), args.MutationDistributionIndex, "must not be negative"))
	}
	return allErrs
}

func supportedStrategy(s v1alpha1.WeightStrategy) bool {
	for _, known := range v1alpha1.SupportedStrategies {
		if s == known {
			return true
		}
	}
	return false
}

func validateProbability(path *field.Path, p *float64) field.ErrorList {
	if p == nil {
		return nil
	}
	if *p < 0 || *p > 1 {
		return field.ErrorList{field.Invalid(path, *p, "must be in [0, 1]")}
	}
	return nil
}
