package contract

import (
	"testing"

	"github.com/huangsam/rategame/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns the raw input produced by the flag defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		CriteriaFile: schema.DefaultCriteriaFile,
		Output:       string(schema.TextOut),
		Color:        DefaultColor,
		LogLevel:     DefaultLogLevel,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.DefaultCriteriaFile, cfg.CriteriaFile)
				assert.Equal(t, schema.ParquetSource, cfg.CriteriaFormat)
				assert.Equal(t, schema.DefaultCriteriaTable, cfg.CriteriaTable)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.True(t, cfg.UseColors)
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.False(t, cfg.Detail)
				assert.False(t, cfg.Force)
			},
		},
		{
			name: "empty criteria file falls back to default",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "  "
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.DefaultCriteriaFile, cfg.CriteriaFile)
			},
		},
		{
			name: "format inferred from extension",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "criteria.YML"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.YAMLSource, cfg.CriteriaFormat)
			},
		},
		{
			name: "explicit format wins over extension",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "criteria.txt"
				in.CriteriaFormat = "CSV"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.CSVSource, cfg.CriteriaFormat)
			},
		},
		{
			name: "sqlite with custom table",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "games.db"
				in.CriteriaTable = "my_criteria"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.SQLiteSource, cfg.CriteriaFormat)
				assert.Equal(t, "my_criteria", cfg.CriteriaTable)
			},
		},
		{
			name: "json output with detail and no color",
			modify: func(in *ConfigRawInput) {
				in.Output = "JSON"
				in.Color = "no"
				in.Detail = true
				in.Width = 100
				in.LogLevel = "DEBUG"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.JSONOut, cfg.Output)
				assert.False(t, cfg.UseColors)
				assert.True(t, cfg.Detail)
				assert.Equal(t, 100, cfg.Width)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "empty log level falls back to default",
			modify: func(in *ConfigRawInput) {
				in.LogLevel = ""
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
			},
		},
		{
			name: "invalid sqlite table",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "games.sqlite"
				in.CriteriaTable = "bad-name"
			},
			expectError: true,
		},
		{
			name: "table name ignored for file formats",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "criteria.csv"
				in.CriteriaTable = "bad-name"
			},
		},
		{
			name: "unknown extension",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFile = "criteria.xlsx"
			},
			expectError: true,
		},
		{
			name: "invalid format",
			modify: func(in *ConfigRawInput) {
				in.CriteriaFormat = "xml"
			},
			expectError: true,
		},
		{
			name: "invalid output",
			modify: func(in *ConfigRawInput) {
				in.Output = "csv"
			},
			expectError: true,
		},
		{
			name: "invalid color",
			modify: func(in *ConfigRawInput) {
				in.Color = "sometimes"
			},
			expectError: true,
		},
		{
			name: "negative width",
			modify: func(in *ConfigRawInput) {
				in.Width = -1
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			modify: func(in *ConfigRawInput) {
				in.LogLevel = "trace"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.modify != nil {
				tt.modify(input)
			}
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestResolveSourceFormat(t *testing.T) {
	tests := []struct {
		explicit string
		path     string
		expected schema.SourceFormat
		wantErr  bool
	}{
		{"", "Resources/rating_criteria.parquet", schema.ParquetSource, false},
		{"", "criteria.csv", schema.CSVSource, false},
		{"", "criteria.yaml", schema.YAMLSource, false},
		{"", "criteria.yml", schema.YAMLSource, false},
		{"", "criteria.db", schema.SQLiteSource, false},
		{"", "criteria.sqlite3", schema.SQLiteSource, false},
		{"", "CRITERIA.CSV", schema.CSVSource, false},
		{" parquet ", "criteria.csv", schema.ParquetSource, false},
		{"", "criteria", "", true},
		{"toml", "criteria.csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.explicit+"|"+tt.path, func(t *testing.T) {
			got, err := ResolveSourceFormat(tt.explicit, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
