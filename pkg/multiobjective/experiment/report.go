package experiment

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	runsSheet    = "Runs"
)

// WriteXLSX writes the summaries and every individual run to a workbook at path.
func WriteXLSX(path string, summaries []Summary, results []RunResult) error {
	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), summarySheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(runsSheet); err != nil {
		return err
	}
	headStyle, err := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summaryHeaders := []string{"Problem", "Algorithm", "Runs", "Failed", "Mean evaluations", "Mean front size", "Mean IGD", "Std IGD", "Mean HV", "Std HV"}
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.Problem, s.Algorithm, s.Runs, s.Failed,
			cellFloat(s.MeanEvaluations), cellFloat(s.MeanFrontSize),
			cellFloat(s.MeanIGD), cellFloat(s.StdIGD),
			cellFloat(s.MeanHypervolume), cellFloat(s.StdHypervolume),
		})
	}
	if err := writeSheet(fx, summarySheet, headStyle, summaryHeaders, rows); err != nil {
		return err
	}

	runHeaders := []string{"Problem", "Algorithm", "Run", "Seed", "Phase", "Evaluations", "Generations", "Front size", "IGD", "HV", "Duration (s)", "Message"}
	rows = make([][]interface{}, 0, len(results))
	for _, r := range results {
		status := r.Record.Status
		front := 0
		if r.Result != nil {
			front = len(r.Result.Front)
		}
		rows = append(rows, []interface{}{
			r.Problem.Name(), r.Algorithm, r.Run, r.Record.Spec.Args.Seed, string(status.Phase),
			status.Evaluations, status.Generations, front,
			cellFloat(r.IGD), cellFloat(r.Hypervolume), r.Duration.Seconds(), status.Message,
		})
	}
	if err := writeSheet(fx, runsSheet, headStyle, runHeaders, rows); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func writeSheet(fx *excelize.File, sheet string, headStyle int, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, cell, cell, headStyle); err != nil {
			return err
		}
	}
	for r, values := range rows {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("%s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// cellFloat leaves the cell empty for unavailable values.
func cellFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}
