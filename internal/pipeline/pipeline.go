// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the conversion end to end: load, derive, assemble,
// write tables, write document. Every stage aborts the run on failure; no
// output file is written before the key space and joins have validated.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/evinputs/internal/assemble"
	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/internal/gcamdoc"
	"github.com/pdiddy/evinputs/internal/report"
	"github.com/pdiddy/evinputs/internal/tables"
	"github.com/pdiddy/evinputs/pkg/types"
)

// Run executes the full conversion. Progress and the validation summary go
// to w; the returned Summary is the same one written to summary.yaml.
func Run(cfg types.Config, w io.Writer) (report.Summary, error) {
	targets, err := tables.LoadTargets(cfg.Inputs.TargetsPath)
	if err != nil {
		return report.Summary{}, err
	}
	assumptions, err := tables.LoadAssumptions(cfg.Inputs.AssumptionsPath)
	if err != nil {
		return report.Summary{}, err
	}
	fmt.Fprintf(w, "Loaded %d target rows, %d assumption rows\n", len(targets), len(assumptions))

	ks, err := derive.BuildKeySpace(targets, assumptions)
	if err != nil {
		return report.Summary{}, err
	}

	coefs, err := derive.Coefficients(targets, assumptions, cfg.Scenario.Technology)
	if err != nil {
		return report.Summary{}, err
	}
	resources, err := derive.ResourceOutputs(targets, assumptions, cfg.Scenario.Technology, cfg.Scenario.PMultiplier)
	if err != nil {
		return report.Summary{}, err
	}

	table1, err := assemble.CoefTable(ks, coefs)
	if err != nil {
		return report.Summary{}, err
	}
	assemble.SortResources(resources)

	coefPath := filepath.Join(cfg.Output.Dir, cfg.Output.CoefFile)
	resPath := filepath.Join(cfg.Output.Dir, cfg.Output.ResFile)
	docPath := filepath.Join(cfg.Output.Dir, cfg.Output.DocFile)
	summaryPath := filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile)

	if err := assemble.WriteCoefCSV(coefPath, table1); err != nil {
		return report.Summary{}, err
	}
	if err := assemble.WriteResCSV(resPath, resources); err != nil {
		return report.Summary{}, err
	}

	doc := gcamdoc.BuildFromTables(table1, resources, cfg.Scenario.Technology, cfg.Scenario.PolicyYears)
	if err := gcamdoc.Write(docPath, doc); err != nil {
		return report.Summary{}, err
	}

	summary := report.Summarize(ks, table1, resources, cfg)
	summary.OutputFiles = []string{coefPath, resPath, docPath}
	if err := report.WriteYAML(summaryPath, summary); err != nil {
		return report.Summary{}, err
	}

	report.Print(summary, w)
	return summary, nil
}
