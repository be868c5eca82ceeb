// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the evinputs CLI. It converts EV
// sale-target and vehicle-assumption tables into the coefficient and
// resource-output tables plus the model input document.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/evinputs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the evinputs CLI.
var rootCmd = &cobra.Command{
	Use:   "evinputs",
	Short: "Generate EV transport input tables and model documents",
	Long: `evinputs converts two scenario-assumption tables (EV sale targets and
vehicle travel / load-factor assumptions) into the StubTranTechCoef and
StubTranTechRES tables plus a nested model input document.

The conversion is a one-shot batch run: generate loads both tables, joins
them over the canonical (region, year, technology) key space, and writes
all outputs, aborting entirely on the first error.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./evinputs.yaml or ~/.config/evinputs/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("evinputs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "evinputs"))
		}
	}

	viper.SetEnvPrefix("EVINPUTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the run configuration from the config file with flag
// overrides and requires both input paths. Paths stay explicit; no stage
// changes the working directory.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg, err := loadConfigLoose(cmd)
	if err != nil {
		return types.Config{}, err
	}
	if cfg.Inputs.TargetsPath == "" {
		return types.Config{}, fmt.Errorf("no targets file: set --targets or inputs.targets in the config")
	}
	if cfg.Inputs.AssumptionsPath == "" {
		return types.Config{}, fmt.Errorf("no assumptions file: set --assumptions or inputs.assumptions in the config")
	}
	return cfg, nil
}

// loadConfigLoose is loadConfig without the input-path requirement, for
// subcommands that only touch the catalog.
func loadConfigLoose(cmd *cobra.Command) (types.Config, error) {
	cfg := types.Config{
		Inputs: types.InputsConfig{
			TargetsPath:     viper.GetString("inputs.targets"),
			AssumptionsPath: viper.GetString("inputs.assumptions"),
		},
		Output: types.OutputConfig{
			Dir:         viper.GetString("output.dir"),
			CoefFile:    viper.GetString("output.coef_file"),
			ResFile:     viper.GetString("output.res_file"),
			DocFile:     viper.GetString("output.doc_file"),
			SummaryFile: viper.GetString("output.summary_file"),
		},
		Scenario: types.ScenarioConfig{
			Technology:  viper.GetString("scenario.technology"),
			PolicyYears: viper.GetIntSlice("scenario.policy_years"),
			PMultiplier: viper.GetFloat64("scenario.p_multiplier"),
		},
		Catalog: types.CatalogConfig{
			Dir: viper.GetString("catalog.dir"),
		},
	}

	if v, _ := cmd.Flags().GetString("targets"); v != "" {
		cfg.Inputs.TargetsPath = v
	}
	if v, _ := cmd.Flags().GetString("assumptions"); v != "" {
		cfg.Inputs.AssumptionsPath = v
	}
	if v, _ := cmd.Flags().GetString("out-dir"); v != "" {
		cfg.Output.Dir = v
	}
	if v, _ := cmd.Flags().GetString("technology"); v != "" {
		cfg.Scenario.Technology = v
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
