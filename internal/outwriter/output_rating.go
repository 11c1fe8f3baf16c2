package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRatingResult outputs the rating, dispatching based on the output format configured.
func WriteRatingResult(w io.Writer, result schema.RatingResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if !result.Computed {
			if err := writeZeroWeight(w); err != nil {
				return err
			}
		}
		if err := writeRatingJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		return writeRatingText(w, result, cfg)
	}
}

// writeRatingText prints the overall rating line and, with detail enabled,
// the per-criterion breakdown.
func writeRatingText(w io.Writer, result schema.RatingResult, cfg *contract.Config) error {
	if !result.Computed {
		return writeZeroWeight(w)
	}

	if _, err := fmt.Fprintf(w, "\nOverall rating calculated: %s/%.1f\n", formatRating(result.Overall), result.MaxRating); err != nil {
		return err
	}
	if !cfg.Detail {
		return nil
	}
	return writeRatingTable(w, result, cfg)
}

// writeZeroWeight reports that no rating can be computed.
func writeZeroWeight(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Total weight is 0. Cannot calculate rating.")
	return err
}

// writeRatingTable generates and writes the breakdown table.
func writeRatingTable(w io.Writer, result schema.RatingResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Position", "Criterion", "Rating", "Multiplier", "Contribution"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxCriterionWidth(cfg)
	data := make([][]string, 0, len(result.Breakdown))
	for _, entry := range result.Breakdown {
		data = append(data, []string{
			strconv.Itoa(entry.Position),
			contract.TruncateText(entry.Criterion, maxWidth),
			strconv.Itoa(entry.Rating),
			"x" + strconv.Itoa(entry.Position),
			strconv.Itoa(entry.Contribution),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	verdict := string(contract.GetPlainVerdict(result.Overall))
	if cfg.UseColors {
		verdict = contract.GetColorVerdict(result.Overall)
	}
	_, err := fmt.Fprintf(w, "Weighted sum %d / total weight %d = %s (%s)\n",
		result.WeightedSum, result.TotalWeight, formatRating(result.Overall), verdict)
	return err
}

// writeRatingJSON writes the rating result in JSON format.
func writeRatingJSON(w io.Writer, result schema.RatingResult) error {
	type JSONRatingResult struct {
		schema.RatingResult
		Verdict string `json:"verdict,omitempty"`
	}

	output := JSONRatingResult{RatingResult: result}
	if result.Computed {
		output.Verdict = string(contract.GetPlainVerdict(result.Overall))
	}
	return writeJSON(w, output)
}
