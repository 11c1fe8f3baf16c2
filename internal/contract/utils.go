package contract

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/rategame/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // ExcellentColor represents a strong result.
	GoodColor      = color.New(color.FgCyan, color.Bold)  // GoodColor represents a solid result.
	MixedColor     = color.New(color.FgYellow)            // MixedColor represents caution, not bold.
	PoorColor      = color.New(color.FgRed)               // PoorColor represents a weak result.
)

// tableNamePattern matches safe SQL identifiers.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// GetPlainVerdict returns a plain verdict for an overall rating on the
// schema.MaxRating scale. This is the core logic used for JSON and table printing.
func GetPlainVerdict(overall float64) schema.Verdict {
	switch {
	case overall >= 16:
		return schema.ExcellentVerdict
	case overall >= 12:
		return schema.GoodVerdict
	case overall >= 8:
		return schema.MixedVerdict
	default:
		return schema.PoorVerdict
	}
}

// GetColorVerdict returns a colored verdict for console output.
// It uses GetPlainVerdict to determine the string, and then applies the appropriate color.
func GetColorVerdict(overall float64) string {
	text := string(GetPlainVerdict(overall))

	switch schema.Verdict(text) {
	case schema.ExcellentVerdict:
		return ExcellentColor.Sprint(text)
	case schema.GoodVerdict:
		return GoodColor.Sprint(text)
	case schema.MixedVerdict:
		return MixedColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ValidateTableName validates that the table name is a safe SQL identifier.
// It ensures the name consists only of alphanumeric characters and underscores,
// starting with a letter or underscore, to prevent SQL injection.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// TruncateText truncates s to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." suffix and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}
