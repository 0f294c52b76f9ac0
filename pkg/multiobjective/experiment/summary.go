package experiment

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the runs of one case.
type Summary struct {
	Algorithm string
	Problem   string
	Runs      int
	Failed    int

	MeanEvaluations float64
	MeanFrontSize   float64

	// Indicator statistics over successful runs; NaN when unavailable.
	MeanIGD, StdIGD                 float64
	MeanHypervolume, StdHypervolume float64
}

// Summarize groups results by case, keeping the order in which cases first appear.
func Summarize(results []RunResult) []Summary {
	type key struct{ algorithm, problem string }
	var order []key
	groups := map[key][]RunResult{}
	for _, r := range results {
		k := key{r.Algorithm, r.Problem.Name()}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	summaries := make([]Summary, 0, len(order))
	for _, k := range order {
		s := Summary{Algorithm: k.algorithm, Problem: k.problem}
		var evaluations, fronts, igd, hv []float64
		for _, r := range groups[k] {
			s.Runs++
			if r.Err != nil || r.Result == nil {
				s.Failed++
				continue
			}
			evaluations = append(evaluations, float64(r.Result.Evaluations))
			fronts = append(fronts, float64(len(r.Result.Front)))
			if !math.IsNaN(r.IGD) {
				igd = append(igd, r.IGD)
			}
			if !math.IsNaN(r.Hypervolume) {
				hv = append(hv, r.Hypervolume)
			}
		}
		s.MeanEvaluations, _ = meanStdDev(evaluations)
		s.MeanFrontSize, _ = meanStdDev(fronts)
		s.MeanIGD, s.StdIGD = meanStdDev(igd)
		s.MeanHypervolume, s.StdHypervolume = meanStdDev(hv)
		summaries = append(summaries, s)
	}
	return summaries
}

// meanStdDev returns NaN for an empty sample and a zero deviation for a single value.
func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
