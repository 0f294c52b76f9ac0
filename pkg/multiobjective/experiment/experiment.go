// Package experiment runs several algorithms over several problems for a
// number of independent, individually seeded runs and summarizes their
// quality indicators.
package experiment

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/pool"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/algorithms"
	"github.com/weips/weips/pkg/multiobjective/framework"
	"github.com/weips/weips/pkg/multiobjective/util"
)

// referencePoints is the size of the sampled true front used by IGD.
const referencePoints = 500

// Case is one algorithm applied to one problem.
type Case struct {
	Algorithm string
	Problem   framework.Problem
	// Args overrides the args of the Runner when set.
	Args *v1alpha1.WeipsArgs
}

// RunResult is the outcome of one independent run of a Case.
type RunResult struct {
	Case
	Run      int
	Result   *algorithms.Result
	Record   *v1alpha1.WeipsRun
	Duration time.Duration
	// IGD and Hypervolume are NaN when they cannot be computed for the problem.
	IGD         float64
	Hypervolume float64
	Err         error
}

// Runner executes experiments.
type Runner struct {
	args      *v1alpha1.WeipsArgs
	runs      int
	workers   int
	outputDir string
	cache     *cache.Cache
	metrics   *Metrics
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithRuns sets the number of independent runs per case. Defaults to 1.
func WithRuns(n int) Option {
	return func(r *Runner) { r.runs = n }
}

// WithWorkers bounds the number of runs executed concurrently. Defaults to 1.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithOutputDir makes every run write its FUN, VAR and YAML record under
// dir/<problem>/<algorithm>.
func WithOutputDir(dir string) Option {
	return func(r *Runner) { r.outputDir = dir }
}

// WithRegisterer registers the run metrics with reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) { r.metrics = NewMetrics(reg) }
}

// NewRunner returns a Runner for the given defaulted args. Run i of every
// case is seeded with args.Seed+i.
func NewRunner(args *v1alpha1.WeipsArgs, opts ...Option) *Runner {
	r := &Runner{
		args:    args.DeepCopy(),
		runs:    1,
		workers: 1,
		cache:   cache.New(cache.NoExpiration, 0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(prometheus.NewRegistry())
	}
	r.runs = max(r.runs, 1)
	r.workers = max(r.workers, 1)
	return r
}

// Run executes runs × len(cases) independent runs and returns their results
// in case-major, run-minor order. A failed run does not stop the others; the
// returned error aggregates every failure.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]RunResult, error) {
	logger := klog.FromContext(ctx)
	results := make([]RunResult, len(cases)*r.runs)

	p := pool.New().WithMaxGoroutines(r.workers)
	for i, c := range cases {
		for run := 0; run < r.runs; run++ {
			slot := &results[i*r.runs+run]
			slot.Case = c
			slot.Run = run
			p.Go(func() {
				runLogger := klog.LoggerWithValues(logger, "algorithm", c.Algorithm, "problem", c.Problem.Name(), "run", run)
				r.execute(klog.NewContext(ctx, runLogger), slot)
			})
		}
	}
	p.Wait()

	var errs []error
	for i := range results {
		if results[i].Err != nil {
			errs = append(errs, fmt.Errorf("%s on %s, run %d: %w", results[i].Algorithm, results[i].Problem.Name(), results[i].Run, results[i].Err))
		}
	}
	return results, utilerrors.NewAggregate(errs)
}

func (r *Runner) execute(ctx context.Context, res *RunResult) {
	logger := klog.FromContext(ctx)
	args := r.args.DeepCopy()
	if res.Args != nil {
		args = res.Args.DeepCopy()
	}
	args.Seed += uint64(res.Run)

	start := r.now()
	res.Record = newRecord(res.Case, res.Run, args, start)
	res.IGD, res.Hypervolume = math.NaN(), math.NaN()

	var generations int
	opt, err := algorithms.New(res.Algorithm, args, res.Problem,
		algorithms.WithWeightCache(r.cache),
		algorithms.WithGenerationCallback(func(s algorithms.GenerationStats) {
			generations = s.Generation
		}),
	)
	if err == nil {
		res.Record.Status.Phase = v1alpha1.RunPhaseEvolving
		res.Result, err = opt.Run(ctx)
	}
	res.Duration = r.now().Sub(start)
	res.Record.Status.CompletionTime = &metav1.Time{Time: start.Add(res.Duration)}

	if err != nil {
		res.Err = err
		res.Record.Status.Phase = v1alpha1.RunPhaseFailed
		res.Record.Status.Generations = generations
		res.Record.Status.Message = err.Error()
		logger.Error(err, "Run failed")
	} else {
		res.Record.Status.Phase = v1alpha1.RunPhaseTerminated
		res.Record.Status.Evaluations = res.Result.Evaluations
		res.Record.Status.Generations = res.Result.Generations
		res.Record.Status.Solutions = util.Solutions(res.Result.Front)
		res.IGD, res.Hypervolume = indicators(res.Problem, res.Result.Front)
		logger.V(2).Info("Run finished", "duration", res.Duration, "front", len(res.Result.Front), "igd", res.IGD)
	}
	r.metrics.observe(res)

	if r.outputDir == "" {
		return
	}
	var front []*framework.Individual
	if res.Result != nil {
		front = res.Result.Front
	}
	dir := filepath.Join(r.outputDir, res.Problem.Name(), res.Algorithm)
	if err := util.SaveRun(dir, res.Record, front); err != nil && res.Err == nil {
		res.Err = fmt.Errorf("saving results: %w", err)
	}
}

func newRecord(c Case, run int, args *v1alpha1.WeipsArgs, start time.Time) *v1alpha1.WeipsRun {
	return &v1alpha1.WeipsRun{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.SchemeGroupVersion.String(),
			Kind:       "WeipsRun",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: fmt.Sprintf("%s-%s-%d", c.Problem.Name(), c.Algorithm, run),
		},
		Spec: v1alpha1.WeipsRunSpec{
			Algorithm: c.Algorithm,
			Problem:   c.Problem.Name(),
			Run:       run,
			Args:      *args,
		},
		Status: v1alpha1.WeipsRunStatus{
			Phase:     v1alpha1.RunPhaseInitializing,
			StartTime: &metav1.Time{Time: start},
		},
	}
}

// indicators computes IGD against the sampled true front and, for two
// objectives, the hypervolume with a reference point 10% beyond the nadir
// of the true front.
func indicators(problem framework.Problem, front []*framework.Individual) (igd, hv float64) {
	igd, hv = math.NaN(), math.NaN()
	reference := problem.TrueParetoFront(referencePoints)
	if len(reference) == 0 {
		return igd, hv
	}
	points := util.Points(util.Feasible(front))
	igd = util.IGD(points, reference)

	if len(reference[0]) != 2 {
		return igd, hv
	}
	nadir := framework.ObjectiveSpacePoint{math.Inf(-1), math.Inf(-1)}
	for _, p := range reference {
		nadir[0] = math.Max(nadir[0], p[0])
		nadir[1] = math.Max(nadir[1], p[1])
	}
	ref := framework.ObjectiveSpacePoint{1.1 * nadir[0], 1.1 * nadir[1]}
	return igd, util.Hypervolume2D(points, ref)
}
