// Command weips runs WeiPS variants and the NSGA-II baseline on benchmark
// problems and prints a summary of their quality indicators.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/weips/weips/apis/config/scheme"
	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/algorithms"
	"github.com/weips/weips/pkg/multiobjective/benchmarks"
	"github.com/weips/weips/pkg/multiobjective/experiment"
	"github.com/weips/weips/pkg/multiobjective/util"
	"github.com/weips/weips/pkg/multiobjective/weights"
)

type options struct {
	config      string
	problems    []string
	algorithms  []string
	runs        int
	workers     int
	output      string
	plot        bool
	gridRows    int
	metricsFile string
	xlsx        string

	populationSize  int
	maxEvaluations  int
	tournamentSize  int
	extremesElitism bool
	seed            uint64
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "Path to a WeipsArgs YAML file.")
	fs.StringSliceVar(&o.problems, "problems", []string{benchmarks.ZDT1Name}, "Problems to solve: "+strings.Join(benchmarks.Names(), ", ")+".")
	fs.StringSliceVar(&o.algorithms, "algorithms", append(weights.Strategies(), algorithms.NSGAIIName), "Algorithms to run: WeiPS strategies or "+algorithms.NSGAIIName+".")
	fs.IntVar(&o.runs, "runs", 1, "Independent runs per algorithm and problem.")
	fs.IntVar(&o.workers, "workers", 1, "Runs executed concurrently.")
	fs.StringVar(&o.output, "output", "", "Directory for FUN, VAR and run records. Nothing is written when empty.")
	fs.BoolVar(&o.plot, "plot", false, "Plot the front of the first run of every bi-objective case.")
	fs.IntVar(&o.gridRows, "grid-rows", 0, "When positive, Grips and StratGrips get a numWeights chosen per problem so their lattice has at least this many rows. Other algorithms keep numWeights.")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "Write the run metrics in Prometheus text format to this file.")
	fs.StringVar(&o.xlsx, "xlsx", "", "Write the summary and every run to this XLSX workbook.")

	fs.IntVar(&o.populationSize, "population-size", 0, "Overrides populationSize.")
	fs.IntVar(&o.maxEvaluations, "max-evaluations", 0, "Overrides maxEvaluations.")
	fs.IntVar(&o.tournamentSize, "tournament-size", 0, "Overrides tournamentSize.")
	fs.BoolVar(&o.extremesElitism, "extremes-elitism", false, "Overrides extremesElitism.")
	fs.Uint64Var(&o.seed, "seed", 0, "Overrides seed. Run i uses seed+i.")
}

// args loads the config file, applies the flag overrides and only then the
// defaults, so numWeights follows --population-size unless the file sets it.
func (o *options) args(fs *pflag.FlagSet) (*v1alpha1.WeipsArgs, error) {
	args := &v1alpha1.WeipsArgs{}
	if o.config != "" {
		var err error
		if args, err = scheme.LoadArgsWithoutDefaults(o.config); err != nil {
			return nil, err
		}
	}
	if fs.Changed("population-size") {
		args.PopulationSize = o.populationSize
	}
	if fs.Changed("max-evaluations") {
		args.MaxEvaluations = o.maxEvaluations
	}
	if fs.Changed("tournament-size") {
		args.TournamentSize = o.tournamentSize
	}
	if fs.Changed("extremes-elitism") {
		args.ExtremesElitism = ptr.To(o.extremesElitism)
	}
	if fs.Changed("seed") {
		args.Seed = o.seed
	}
	scheme.Scheme.Default(args)
	return args, nil
}

func (o *options) cases(args *v1alpha1.WeipsArgs) ([]experiment.Case, error) {
	var cases []experiment.Case
	for _, name := range o.problems {
		problem, err := benchmarks.ForName(name)
		if err != nil {
			return nil, err
		}
		var gridArgs *v1alpha1.WeipsArgs
		if o.gridRows > 0 {
			gridArgs = args.DeepCopy()
			gridArgs.NumWeights = weights.GridSubdivisions(len(problem.ObjectiveFuncs()), o.gridRows)
		}
		for _, algorithm := range o.algorithms {
			c := experiment.Case{Algorithm: algorithm, Problem: problem}
			if gridArgs != nil && isGrid(algorithm) {
				c.Args = gridArgs
			}
			cases = append(cases, c)
		}
	}
	return cases, nil
}

func isGrid(algorithm string) bool {
	s, err := weights.ForName(algorithm, nil)
	if err != nil {
		return false
	}
	return s.Name() == weights.GripsName || s.Name() == weights.StratGripsName
}

func main() {
	os.Exit(run())
}

func run() int {
	goflags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	o := &options{}
	o.addFlags(pflag.CommandLine)
	pflag.Parse()
	defer klog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	logger := klog.FromContext(ctx)

	args, err := o.args(pflag.CommandLine)
	if err != nil {
		logger.Error(err, "Loading configuration")
		return 1
	}
	cases, err := o.cases(args)
	if err != nil {
		logger.Error(err, "Building experiment")
		return 1
	}

	registry := prometheus.NewRegistry()
	runner := experiment.NewRunner(args,
		experiment.WithRuns(o.runs),
		experiment.WithWorkers(o.workers),
		experiment.WithOutputDir(o.output),
		experiment.WithRegisterer(registry),
	)

	logger.Info("Starting experiment", "cases", len(cases), "runs", o.runs, "workers", o.workers,
		"populationSize", args.PopulationSize, "maxEvaluations", args.MaxEvaluations)
	start := time.Now()
	results, runErr := runner.Run(klog.NewContext(ctx, logger), cases)
	if runErr != nil {
		logger.Error(runErr, "Some runs failed")
	}

	summaries := experiment.Summarize(results)
	printSummary(summaries, time.Since(start))

	if o.plot {
		plotFronts(logger, o.output, results)
	}
	if o.xlsx != "" {
		if err := experiment.WriteXLSX(o.xlsx, summaries, results); err != nil {
			logger.Error(err, "Writing workbook", "file", o.xlsx)
			return 1
		}
	}
	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, registry); err != nil {
			logger.Error(err, "Writing metrics", "file", o.metricsFile)
			return 1
		}
	}
	if runErr != nil {
		return 1
	}
	return 0
}

func printSummary(summaries []experiment.Summary, elapsed time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("WeiPS experiment (%s)", elapsed.Round(time.Millisecond)))
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Problem", "Algorithm", "Runs", "Failed", "Evaluations", "Front", "IGD", "HV"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Problem,
			s.Algorithm,
			s.Runs,
			s.Failed,
			formatCount(s.MeanEvaluations),
			formatCount(s.MeanFrontSize),
			formatStat(s.MeanIGD, s.StdIGD),
			formatStat(s.MeanHypervolume, s.StdHypervolume),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

func formatCount(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return humanize.Comma(int64(math.Round(v)))
}

func formatStat(mean, std float64) string {
	if math.IsNaN(mean) {
		return "-"
	}
	return fmt.Sprintf("%.4e ± %.2e", mean, std)
}

func plotFronts(logger klog.Logger, output string, results []experiment.RunResult) {
	dir := output
	if dir == "" {
		dir = "."
	}
	for _, r := range results {
		if r.Run != 0 || r.Result == nil || len(r.Problem.ObjectiveFuncs()) != 2 {
			continue
		}
		path, err := util.PlotResults(filepath.Join(dir, "plots"), util.Points(r.Result.Front), r.Problem, r.Algorithm)
		if err != nil {
			logger.Error(err, "Plotting front", "algorithm", r.Algorithm, "problem", r.Problem.Name())
			continue
		}
		logger.V(2).Info("Wrote plot", "path", path)
	}
}
