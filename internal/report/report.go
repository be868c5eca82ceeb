// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the post-run validation summary for operator
// inspection and persists it as YAML next to the outputs.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/pkg/types"
)

// Summary holds the counts and distinct-value listings of one run. It is
// informational only; nothing downstream consumes it programmatically.
type Summary struct {
	GeneratedAt     time.Time `yaml:"generated_at"`
	TargetsPath     string    `yaml:"targets"`
	AssumptionsPath string    `yaml:"assumptions"`

	Regions    []string `yaml:"regions"`
	Years      []int    `yaml:"years"`
	Categories []string `yaml:"categories"`

	CanonicalRows   int `yaml:"canonical_rows"`
	MatchedRows     int `yaml:"matched_rows"`
	CoefficientRows int `yaml:"coefficient_rows"`
	ResourceRows    int `yaml:"resource_rows"`

	OutputFiles []string `yaml:"output_files"`
}

// Summarize collects counts and distinct values from the pipeline results.
func Summarize(ks derive.KeySpace, table1 []types.CoefTableRow, resources []types.ResourceRow, cfg types.Config) Summary {
	matched := 0
	for _, r := range table1 {
		if r.Coefficient != nil {
			matched++
		}
	}

	catSet := make(map[string]bool)
	for _, t := range ks.Techs {
		if cat := derive.ClassifyTransport(t.Supplysector); cat != derive.CategoryUnrecognized {
			catSet[string(cat)] = true
		}
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	regions := append([]string(nil), ks.Regions...)
	sort.Strings(regions)
	years := append([]int(nil), ks.Years...)
	sort.Ints(years)

	return Summary{
		GeneratedAt:     time.Now(),
		TargetsPath:     cfg.Inputs.TargetsPath,
		AssumptionsPath: cfg.Inputs.AssumptionsPath,
		Regions:         regions,
		Years:           years,
		Categories:      cats,
		CanonicalRows:   len(table1),
		MatchedRows:     matched,
		CoefficientRows: len(table1),
		ResourceRows:    len(resources),
	}
}

// Print writes the human-readable summary to w.
func Print(s Summary, w io.Writer) {
	fmt.Fprintf(w, "Coefficient table: %d rows (%d with coefficient)\n", s.CoefficientRows, s.MatchedRows)
	fmt.Fprintf(w, "Resource table:    %d rows\n", s.ResourceRows)
	fmt.Fprintf(w, "Regions (%d): %v\n", len(s.Regions), s.Regions)
	fmt.Fprintf(w, "Years (%d): %v\n", len(s.Years), s.Years)
	fmt.Fprintf(w, "Transport categories: %v\n", s.Categories)
	for _, f := range s.OutputFiles {
		fmt.Fprintf(w, "Wrote %s\n", f)
	}
}

// WriteYAML saves the summary to path.
func WriteYAML(path string, s Summary) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
