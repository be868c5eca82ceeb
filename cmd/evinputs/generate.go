// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/evinputs/internal/catalog"
	"github.com/pdiddy/evinputs/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full conversion and write all output files",
	Long: `Generate loads the target and assumption tables, builds the canonical
key space, computes the coefficient and resource-output joins, and writes
StubTranTechCoef.csv, StubTranTechRES.csv, the model input document, and a
summary.yaml. The run aborts on the first error; no partial outputs are
produced before the joins have validated.

Each successful run is recorded in the run catalog unless --no-catalog is set.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	summary, err := pipeline.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	noCatalog, _ := cmd.Flags().GetBool("no-catalog")
	if noCatalog {
		return nil
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(context.Background(), summary, cfg.Output.Dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Recorded run %d in catalog\n", id)
	return nil
}

func init() {
	generateCmd.Flags().String("targets", "", "EV sale-target CSV path")
	generateCmd.Flags().String("assumptions", "", "travel / load-factor assumption CSV path")
	generateCmd.Flags().String("out-dir", "", "output directory (default .)")
	generateCmd.Flags().String("technology", "", "EV technology name (default BEV)")
	generateCmd.Flags().Bool("no-catalog", false, "skip recording the run in the catalog")

	rootCmd.AddCommand(generateCmd)
}
