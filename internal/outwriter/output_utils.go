package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// formatRating renders a rating value with two decimals, the way every
// rating is shown on the console.
func formatRating(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
