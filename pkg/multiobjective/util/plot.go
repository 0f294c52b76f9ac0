package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the front found by the algorithm, writes it as HTML under dir and
// returns the file path.
func PlotResults(dir string, results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return "", fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	if trueParetoFront := problem.TrueParetoFront(100); len(trueParetoFront) > 0 {
		scatter.AddSeries("True Pareto Front", scatterData(trueParetoFront, "circle"))
	}

	// Add data series
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), scatterData(results, "triangle")).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return path, scatter.Render(f)
}

func scatterData(points []framework.ObjectiveSpacePoint, symbol string) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: 10,
		}
	}
	return data
}
