package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/rategame/schema"
)

// Default values for configuration.
const (
	DefaultLogLevel = "warn"
	DefaultColor    = "yes"
)

// ValidLogLevels lists all accepted log levels.
var ValidLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config holds the runtime configuration for a rating session.
// This struct is the "final, validated" config.
type Config struct {
	CriteriaFile   string
	CriteriaFormat schema.SourceFormat
	CriteriaTable  string // Only used by the SQLite source

	Output    schema.OutputMode
	Detail    bool
	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)

	LogLevel string

	Force bool // Overwrite an existing criteria file on init
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	CriteriaFile   string `mapstructure:"criteria-file"`
	CriteriaFormat string `mapstructure:"criteria-format"`
	CriteriaTable  string `mapstructure:"criteria-table"`
	Output         string `mapstructure:"output"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
	LogLevel       string `mapstructure:"log-level"`

	// --- Fields from rateCmd flags ---
	Detail bool `mapstructure:"detail"`

	// --- Fields from criteriaInitCmd.Flags() ---
	Force bool `mapstructure:"force"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCriteriaSource(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Detail = input.Detail
	cfg.Force = input.Force

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, ok := ValidLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	return nil
}

// processCriteriaSource resolves the criteria file, its format and the SQLite table name.
func processCriteriaSource(cfg *Config, input *ConfigRawInput) error {
	cfg.CriteriaFile = strings.TrimSpace(input.CriteriaFile)
	if cfg.CriteriaFile == "" {
		cfg.CriteriaFile = schema.DefaultCriteriaFile
	}

	format, err := ResolveSourceFormat(input.CriteriaFormat, cfg.CriteriaFile)
	if err != nil {
		return err
	}
	cfg.CriteriaFormat = format

	cfg.CriteriaTable = strings.TrimSpace(input.CriteriaTable)
	if cfg.CriteriaTable == "" {
		cfg.CriteriaTable = schema.DefaultCriteriaTable
	}
	if cfg.CriteriaFormat == schema.SQLiteSource {
		if err := ValidateTableName(cfg.CriteriaTable); err != nil {
			return err
		}
	}

	return nil
}

// ResolveSourceFormat returns the explicit format when given, otherwise the
// format implied by the file extension.
func ResolveSourceFormat(explicit, path string) (schema.SourceFormat, error) {
	if explicit = strings.ToLower(strings.TrimSpace(explicit)); explicit != "" {
		format := schema.SourceFormat(explicit)
		if _, ok := schema.ValidSourceFormats[format]; !ok {
			return "", fmt.Errorf("invalid criteria format '%s'. must be parquet, csv, yaml, sqlite", explicit)
		}
		return format, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := schema.SourceExtensions[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("cannot infer criteria format from %q. set --criteria-format", path)
}
