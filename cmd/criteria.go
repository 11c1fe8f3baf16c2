package cmd

import (
	"github.com/huangsam/rategame/core"
	"github.com/huangsam/rategame/internal/console"
	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/internal/source"
	"github.com/spf13/cobra"
)

// criteriaCmd groups the criteria table utilities.
var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Inspect or create the criteria table.",
	Long: `Work with the criteria table without starting a rating session.

Subcommands:
  list  Show the organized criteria
  init  Write the built-in criteria table to the criteria file`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// criteriaListCmd prints the organized criteria.
var criteriaListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the criteria grouped by category.",
	Long: `Load the criteria table and print it grouped by category.

Examples:
  # Show the bundled criteria as a table
  rategame criteria list

  # Export the organized criteria as JSON
  rategame criteria list --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		src, err := source.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Cannot open criteria", err)
		}
		p := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if err := core.ExecuteCriteriaList(rootCtx, cfg, src, p, logger); err != nil {
			contract.LogFatal("Cannot list criteria", err)
		}
	},
}

// criteriaInitCmd writes the built-in criteria table.
var criteriaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in criteria table to the criteria file.",
	Long: `Create the criteria resource from the built-in table.

The format follows --criteria-format or the file extension, so the same
table can be written as Parquet, CSV, YAML or a SQLite table.

Examples:
  # Create Resources/rating_criteria.parquet
  rategame criteria init

  # Start from an editable CSV copy
  rategame criteria init --criteria-file criteria.csv --force`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		dst, err := source.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Cannot open criteria", err)
		}
		seed, err := source.SeedTable()
		if err != nil {
			contract.LogFatal("Cannot read built-in criteria", err)
		}
		p := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if err := core.ExecuteCriteriaInit(rootCtx, cfg, dst, seed, p, logger); err != nil {
			contract.LogFatal("Cannot write criteria", err)
		}
	},
}
