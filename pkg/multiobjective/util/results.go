package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/weips/weips/apis/config/v1alpha1"
	"github.com/weips/weips/pkg/multiobjective/framework"
)

// WriteFUN writes one line of space separated objective values per feasible
// individual. Infeasible individuals are left out.
func WriteFUN(w io.Writer, individuals []*framework.Individual) error {
	bw := bufio.NewWriter(w)
	for _, ind := range individuals {
		if !ind.Feasible() {
			continue
		}
		if err := writeRow(bw, ind.Objectives); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVAR writes one line of space separated decision variables per
// individual, infeasible ones included. Pass Feasible(individuals) to keep
// the lines aligned with WriteFUN.
func WriteVAR(w io.Writer, individuals []*framework.Individual) error {
	bw := bufio.NewWriter(w)
	for _, ind := range individuals {
		if err := writeRow(bw, ind.Solution.Values()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, row []float64) error {
	for i, v := range row {
		if i > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// Feasible returns the individuals without constraint violation, in order.
func Feasible(individuals []*framework.Individual) []*framework.Individual {
	out := make([]*framework.Individual, 0, len(individuals))
	for _, ind := range individuals {
		if ind.Feasible() {
			out = append(out, ind)
		}
	}
	return out
}

// Solutions converts individuals into their API representation.
func Solutions(individuals []*framework.Individual) []v1alpha1.OptimizationSolution {
	out := make([]v1alpha1.OptimizationSolution, len(individuals))
	for i, ind := range individuals {
		out[i] = v1alpha1.OptimizationSolution{
			Objectives: slices.Clone(ind.Objectives),
			Variables:  slices.Clone(ind.Solution.Values()),
			Violation:  ind.Violation,
		}
	}
	return out
}

// SaveRun writes FUN.<n>, VAR.<n> and run.<n>.yaml for a finished run into
// dir, where n is the run index. FUN and VAR hold the feasible members of
// front, line i of one describing the same solution as line i of the other.
// front may be nil for a failed run, in which case only the YAML record is
// written.
func SaveRun(dir string, run *v1alpha1.WeipsRun, front []*framework.Individual) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if front != nil {
		front = Feasible(front)
		if err := writeFile(filepath.Join(dir, fmt.Sprintf("FUN.%d", run.Spec.Run)), func(w io.Writer) error {
			return WriteFUN(w, front)
		}); err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, fmt.Sprintf("VAR.%d", run.Spec.Run)), func(w io.Writer) error {
			return WriteVAR(w, front)
		}); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", run.Name, err)
	}
	return os.WriteFile(filepath.Join(dir, fmt.Sprintf("run.%d.yaml", run.Spec.Run)), data, 0o644)
}

// LoadRun reads a run record written by SaveRun.
func LoadRun(path string) (*v1alpha1.WeipsRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	run := &v1alpha1.WeipsRun{}
	if err := yaml.UnmarshalStrict(data, run); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return run, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
