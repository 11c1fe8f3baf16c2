package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteOrganizedCriteria prints each category followed by its indented criteria.
func WriteOrganizedCriteria(w io.Writer, index *schema.CriteriaIndex) error {
	if _, err := fmt.Fprintln(w, "\nOrganized Criteria:"); err != nil {
		return err
	}
	for category, criteria := range index.All() {
		if _, err := fmt.Fprintf(w, "\t%s: \n\t\t%s\n", category, strings.Join(criteria, "\n\t\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteCriteriaList outputs the criteria index, dispatching based on the output format configured.
func WriteCriteriaList(w io.Writer, index *schema.CriteriaIndex, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, index); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		return writeCriteriaTable(w, index, cfg)
	}
}

// writeCriteriaTable generates and writes the human-readable criteria table.
func writeCriteriaTable(w io.Writer, index *schema.CriteriaIndex, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "#", "Criterion"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := GetMaxCriterionWidth(cfg)
	var data [][]string
	for category, criteria := range index.All() {
		for i, criterion := range criteria {
			data = append(data, []string{
				category,
				strconv.Itoa(i + 1),
				contract.TruncateText(criterion, maxWidth),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d categories, %d criteria\n", index.Len(), index.CriteriaCount())
	return err
}
