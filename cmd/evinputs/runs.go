// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/evinputs/internal/catalog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded generation runs from the catalog",
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigLoose(cmd)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-4s  %-20s  %-6s  %-7s  %-5s  %-8s  %s\n",
		"ID", "Started", "Rows", "Matched", "Res", "Regions", "Output")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Printf("%-4d  %-20s  %-6d  %-7d  %-5d  %-8d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"),
			r.CanonicalRows, r.MatchedRows, r.ResourceRows, len(r.Regions), r.OutputDir)
	}
	return nil
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}
