package algorithms

import (
	"context"
	"fmt"
	"strings"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
	"github.com/weips/weips/pkg/multiobjective/weights"
)

// Optimizer is a runnable multi-objective algorithm.
type Optimizer interface {
	framework.Algorithm
	Run(ctx context.Context) (*Result, error)
}

var (
	_ Optimizer = &Weips{}
	_ Optimizer = &NSGAII{}
)

// New builds the algorithm called name: NSGA-II, or a WeiPS variant named
// after its weight strategy. Names are matched case-insensitively and an
// empty name runs the strategy of args.
func New(name string, args *v1alpha1.WeipsArgs, problem framework.Problem, opts ...Option) (Optimizer, error) {
	if strings.EqualFold(name, NSGAIIName) {
		return NewNSGAII(args, problem, opts...)
	}
	if name != "" && args != nil {
		strategy, err := weights.ForName(name, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, err)
		}
		args = args.DeepCopy()
		args.Strategy = v1alpha1.WeightStrategy(strategy.Name())
	}
	return NewWeips(args, problem, opts...)
}
