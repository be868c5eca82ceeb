// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/internal/tables"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the input tables and print the key-space summary",
	Long: `Inspect loads both input tables and reports the canonical key space
(distinct regions, years, and technology triples) and the transport-category
classification of each supplysector without writing any output files. Use it
to sanity-check new input data before a generate run.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	targets, err := tables.LoadTargets(cfg.Inputs.TargetsPath)
	if err != nil {
		return err
	}
	assumptions, err := tables.LoadAssumptions(cfg.Inputs.AssumptionsPath)
	if err != nil {
		return err
	}

	ks, err := derive.BuildKeySpace(targets, assumptions)
	if err != nil {
		return err
	}

	fmt.Printf("Targets:     %d rows (%s)\n", len(targets), cfg.Inputs.TargetsPath)
	fmt.Printf("Assumptions: %d rows (%s)\n", len(assumptions), cfg.Inputs.AssumptionsPath)
	fmt.Printf("Regions (%d): %v\n", len(ks.Regions), ks.Regions)
	fmt.Printf("Years (%d): %v\n", len(ks.Years), ks.Years)
	fmt.Printf("Technology triples (%d):\n", len(ks.Techs))
	for _, t := range ks.Techs {
		cat := derive.ClassifyTransport(t.Supplysector)
		label := string(cat)
		if cat == derive.CategoryUnrecognized {
			label = "unrecognized"
		}
		fmt.Printf("  %-32s %-24s %-12s [%s]\n", t.Supplysector, t.TranSubsector, t.Technology, label)
	}
	fmt.Printf("Canonical rows: %d\n", ks.Size())

	if _, err := derive.Coefficients(targets, assumptions, cfg.Scenario.Technology); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

func init() {
	inspectCmd.Flags().String("targets", "", "EV sale-target CSV path")
	inspectCmd.Flags().String("assumptions", "", "travel / load-factor assumption CSV path")
	inspectCmd.Flags().String("technology", "", "EV technology name (default BEV)")

	rootCmd.AddCommand(inspectCmd)
}
