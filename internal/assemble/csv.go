// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/evinputs/pkg/types"
)

// WriteCoefCSV writes output table 1 (StubTranTechCoef). A nil coefficient
// serializes as an empty cell; sparsity is part of the table's contract.
func WriteCoefCSV(path string, rows []types.CoefTableRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{
		"region", "year", "supplysector", "tranSubsector", "stub.technology",
		"coefficient", "minicam_energy_input", "market_name",
	})
	for _, r := range rows {
		coef := ""
		if r.Coefficient != nil {
			coef = formatFloat(*r.Coefficient)
		}
		records = append(records, []string{
			r.Region, strconv.Itoa(r.Year), r.Supplysector, r.TranSubsector,
			r.Technology, coef, r.EnergyInput, r.MarketName,
		})
	}
	return writeCSV(path, records)
}

// WriteResCSV writes output table 2 (StubTranTechRES).
func WriteResCSV(path string, rows []types.ResourceRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{
		"region", "supplysector", "tranSubsector", "stub.technology", "year",
		"res.secondary.output", "output.ratio", "pMultiplier",
	})
	for _, r := range rows {
		records = append(records, []string{
			r.Region, r.Supplysector, r.TranSubsector, r.Technology,
			strconv.Itoa(r.Year), r.SecondaryOutput,
			formatFloat(r.OutputRatio), formatFloat(r.PMultiplier),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
