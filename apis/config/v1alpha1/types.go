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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// WeipsArgs holds the parameters of a single WeiPS run. It is created once
// before the run and never modified while the run is in progress.
type WeipsArgs struct {
	metav1.TypeMeta `json:",inline"`

	// PopulationSize is the number of individuals kept between generations.
	PopulationSize int `json:"populationSize,omitempty"`

	// MaxEvaluations is the evaluation budget, initial population included.
	// It must be at least PopulationSize.
	MaxEvaluations int `json:"maxEvaluations,omitempty"`

	// NumWeights is the number of weight vectors requested from the strategy.
	// For the grid strategies it is the number of lattice levels per objective.
	NumWeights int `json:"numWeights,omitempty"`

	// TournamentSize is the number of candidates compared per tournament.
	TournamentSize int `json:"tournamentSize,omitempty"`

	// ExtremesElitism keeps the best individual of every objective when the
	// non-dominated set overflows the population.
	ExtremesElitism *bool `json:"extremesElitism,omitempty"`

	// Strategy selects how the weight matrix is built.
	// +kubebuilder:validation:Enum=Rawps;Unpas;Grips;StratGrips
	Strategy WeightStrategy `json:"strategy,omitempty"`

	// CrossoverProbability is the probability of applying crossover to a pair of parents.
	CrossoverProbability *float64 `json:"crossoverProbability,omitempty"`

	// CrossoverDistributionIndex is the SBX distribution index.
	CrossoverDistributionIndex float64 `json:"crossoverDistributionIndex,omitempty"`

	// MutationProbability is the per-variable mutation probability.
	// When unset, 1/numberOfVariables is used.
	MutationProbability *float64 `json:"mutationProbability,omitempty"`

	// MutationDistributionIndex is the polynomial mutation distribution index.
	MutationDistributionIndex float64 `json:"mutationDistributionIndex,omitempty"`

	// Seed seeds the random stream owned by the run.
	Seed uint64 `json:"seed,omitempty"`
}

// WeightStrategy names a weight matrix generation strategy
type WeightStrategy string

const (
	// StrategyRawps draws a fresh random weight vector for every comparison
	StrategyRawps WeightStrategy = "Rawps"

	// StrategyUnpas draws a uniform-random weight matrix once
	StrategyUnpas WeightStrategy = "Unpas"

	// StrategyGrips enumerates a regular lattice on the simplex
	StrategyGrips WeightStrategy = "Grips"

	// StrategyStratGrips randomly perturbs every lattice point
	StrategyStratGrips WeightStrategy = "StratGrips"
)

// SupportedStrategies lists every valid WeightStrategy.
var SupportedStrategies = []WeightStrategy{StrategyRawps, StrategyUnpas, StrategyGrips, StrategyStratGrips}

// +genclient
// +genclient:nonNamespaced
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
// +kubebuilder:object:root=true
// +kubebuilder:printcolumn:name="Phase",JSONPath=".status.phase",type=string,description="Current phase of the run"
// +kubebuilder:printcolumn:name="Evaluations",JSONPath=".status.evaluations",type=integer,description="Evaluations consumed"

// WeipsRun records one optimization run: the arguments it was started with
// and the non-dominated solutions it produced.
type WeipsRun struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   WeipsRunSpec   `json:"spec,omitempty"`
	Status WeipsRunStatus `json:"status,omitempty"`
}

// WeipsRunSpec defines what was run
type WeipsRunSpec struct {
	// Algorithm is the variant name, e.g. Grips or NSGA-II
	Algorithm string `json:"algorithm"`

	// Problem is the name of the optimized problem
	Problem string `json:"problem"`

	// Run is the index of the independent repetition
	Run int `json:"run"`

	// Args are the defaulted arguments of the run
	Args WeipsArgs `json:"args"`
}

// WeipsRunStatus defines the observed state of a run
type WeipsRunStatus struct {
	// Phase represents the current phase of the run
	// +kubebuilder:validation:Enum=Initializing;Evolving;Terminated;Failed
	Phase RunPhase `json:"phase,omitempty"`

	// Evaluations is the number of objective evaluations consumed
	Evaluations int `json:"evaluations,omitempty"`

	// Generations is the number of completed generations
	Generations int `json:"generations,omitempty"`

	// StartTime is when the run started
	StartTime *metav1.Time `json:"startTime,omitempty"`

	// CompletionTime is when the run terminated
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`

	// Message holds the error of a failed run
	Message string `json:"message,omitempty"`

	// Solutions contains the non-dominated solutions of the final population
	Solutions []OptimizationSolution `json:"solutions,omitempty"`
}

// RunPhase represents the phase of a run
type RunPhase string

const (
	// RunPhaseInitializing indicates the weight matrix and initial population are being built
	RunPhaseInitializing RunPhase = "Initializing"

	// RunPhaseEvolving indicates generations are being produced
	RunPhaseEvolving RunPhase = "Evolving"

	// RunPhaseTerminated indicates the evaluation budget was exhausted
	RunPhaseTerminated RunPhase = "Terminated"

	// RunPhaseFailed indicates the run was aborted by an error
	RunPhaseFailed RunPhase = "Failed"
)

// OptimizationSolution represents a single solution of the final front
type OptimizationSolution struct {
	// Objectives contains the objective values, all minimized
	Objectives []float64 `json:"objectives"`

	// Variables contains the decision variables
	Variables []float64 `json:"variables"`

	// Violation is the overall constraint violation, 0 when feasible
	Violation float64 `json:"violation,omitempty"`
}

// +kubebuilder:object:root=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// WeipsRunList contains a list of WeipsRun
type WeipsRunList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []WeipsRun `json:"items"`
}
