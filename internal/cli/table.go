package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/techplot/internal/model"
)

var summaryColumns = []string{"Metric", "Classifier", "Technique", "N", "Min", "Q1", "Median", "Q3", "Max", "Mean"}

// WriteSummaryTable writes summaries as an aligned table with a styled header.
func WriteSummaryTable(w io.Writer, summaries []model.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, len(summaryColumns))
	rule := make([]string, len(summaryColumns))
	for i, c := range summaryColumns {
		header[i] = TableHeaderStyle.Render(c)
		rule[i] = strings.Repeat("-", len(c))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return err
	}

	for _, s := range summaries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			s.Metric, s.Classifier, s.Technique, s.Count,
			s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean); err != nil {
			return err
		}
	}

	return tw.Flush()
}
