package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/rategame/core"
	"github.com/huangsam/rategame/internal/console"
	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/internal/outwriter"
	"github.com/huangsam/rategame/internal/source"
	"github.com/huangsam/rategame/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// logger is replaced by the configured logger during sharedSetup.
var logger = zap.NewNop()

// rootCmd runs the interactive rating session.
var rootCmd = &cobra.Command{
	Use:   "rategame",
	Short: "Rate a game from your scores across categorized criteria.",
	Long: `Rate That Game computes a single weighted rating for a game.

It loads a fixed table of criteria grouped into categories, lets you add your
own, asks for a 0-10 rating per criterion and prints the overall rating on a
20-point scale.

Examples:
  # Start a rating session with the bundled criteria table
  rategame

  # Show the per-criterion breakdown after the rating
  rategame --detail

  # Read criteria from a CSV file instead of Parquet
  rategame --criteria-file criteria.csv`,
	Version:            version,
	Args:               cobra.NoArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		src, err := source.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Cannot open criteria", err)
		}
		p := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if err := core.ExecuteRate(rootCtx, cfg, src, p, logger); err != nil {
			if errors.Is(err, core.ErrLoadCriteria) {
				// Already reported on the console
				os.Exit(1)
			}
			contract.LogFatal("Cannot rate game", err)
		}
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A .env file is optional; real environment variables still apply without it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		contract.LogWarn("Cannot read .env file", err)
	}

	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".rategame") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("RATEGAME")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("criteria-file", schema.DefaultCriteriaFile)
	viper.SetDefault("criteria-format", "")
	viper.SetDefault("criteria-table", schema.DefaultCriteriaTable)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", contract.DefaultColor)
	viper.SetDefault("width", 0)
	viper.SetDefault("log-level", contract.DefaultLogLevel)
}

// sharedSetup unmarshals config, runs validation and builds the logger.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Wire output and diagnostics.
	if !cfg.UseColors || !outwriter.IsTerminal(os.Stdout) {
		color.NoColor = true
	}
	l, err := contract.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	logger.Debug("configuration resolved",
		zap.String("criteria_file", cfg.CriteriaFile),
		zap.String("criteria_format", string(cfg.CriteriaFormat)),
		zap.String("output", string(cfg.Output)))

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}
