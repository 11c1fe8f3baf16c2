// Package cmd defines the command-line interface for rategame.
package cmd

import (
	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(criteriaCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the criteria subcommands to the parent criteria command
	criteriaCmd.AddCommand(criteriaListCmd)
	criteriaCmd.AddCommand(criteriaInitCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("criteria-file", schema.DefaultCriteriaFile, "Path to the criteria table")
	rootCmd.PersistentFlags().String("criteria-format", "", "Criteria format: parquet or csv or yaml or sqlite (default: from file extension)")
	rootCmd.PersistentFlags().String("criteria-table", schema.DefaultCriteriaTable, "Table name when reading criteria from SQLite")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("color", contract.DefaultColor, "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Diagnostics log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all local flags of rootCmd to Viper
	rootCmd.Flags().Bool("detail", false, "Print the per-criterion rating breakdown")
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rate flags", err)
	}

	// Bind all flags of criteriaInitCmd to Viper
	criteriaInitCmd.Flags().Bool("force", false, "Overwrite an existing criteria file")
	if err := viper.BindPFlags(criteriaInitCmd.Flags()); err != nil {
		contract.LogFatal("Error binding criteria init flags", err)
	}
}
