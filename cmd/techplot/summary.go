package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/techplot/internal/chart"
	"github.com/Veraticus/techplot/internal/cli"
	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/config"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/summary"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		metrics []string
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print distribution summaries per classifier and technique",
		Long: `Compute min, quartiles, max and mean of each metric for every classifier and technique.

Without --metric the metrics of the default charts are summarized. Use --save to store the
summaries in the database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			selected, err := parseMetrics(metrics)
			if err != nil {
				return common.NewUserError("invalid --metric", err)
			}

			summaries, err := computeSummaries(ctx, cmd.OutOrStdout(), cfg, selected)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("No summaries computed"))
				return nil
			}

			if err := cli.WriteSummaryTable(cmd.OutOrStdout(), summaries); err != nil {
				return err
			}

			if !save {
				return nil
			}
			return saveSummaries(ctx, cmd.OutOrStdout(), cfg, summaries)
		},
	}

	cmd.Flags().StringSliceVarP(&metrics, "metric", "m", nil, "metric to summarize (repeatable)")
	cmd.Flags().BoolVar(&save, "save", false, "store the summaries in the database")

	cmd.AddCommand(summaryListCmd())
	cmd.AddCommand(summaryProjectsCmd())
	cmd.AddCommand(summaryDeleteCmd())

	return cmd
}

func summaryListCmd() *cobra.Command {
	var metric string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored summaries for the project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if metric != "" {
				if _, err := model.SourceFor(model.Metric(metric)); err != nil {
					return common.NewUserError("invalid --metric", err)
				}
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.GetSummaries(ctx, cfg.Project, model.Metric(metric))
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No stored summaries for %s", cfg.Project)))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle(fmt.Sprintf("Summaries for %s", cfg.Project)))
			return cli.WriteSummaryTable(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", "", "only show this metric")

	return cmd
}

func summaryProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects with stored summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			projects, err := store.ListProjects(ctx)
			if err != nil {
				return err
			}
			for _, p := range projects {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func summaryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the stored summaries of the project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.DeleteProject(ctx, cfg.Project)
			if err != nil {
				return fmt.Errorf("failed to delete summaries: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %d summaries of %s", n, cfg.Project)))
			return nil
		},
	}
}

// saveSummaries stores summaries, replacing the stored groups of every saved metric.
func saveSummaries(ctx context.Context, out io.Writer, cfg *config.Config, summaries []model.Summary) error {
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveSummaries(ctx, summaries); err != nil {
		return fmt.Errorf("failed to save summaries: %w", err)
	}
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Saved %d summaries to %s", len(summaries), store.Path())))
	return nil
}

// defaultMetrics returns the metrics plotted by the default charts, in chart order.
func defaultMetrics() []model.Metric {
	var out []model.Metric
	seen := make(map[model.Metric]bool)
	for _, spec := range chart.DefaultSpecs(model.ColumnOrder) {
		for _, p := range spec.Panels {
			if !seen[p.Metric] {
				seen[p.Metric] = true
				out = append(out, p.Metric)
			}
		}
	}
	return out
}

func parseMetrics(names []string) ([]model.Metric, error) {
	if len(names) == 0 {
		return defaultMetrics(), nil
	}
	out := make([]model.Metric, 0, len(names))
	for _, n := range names {
		m := model.Metric(n)
		if _, err := model.SourceFor(m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// computeSummaries loads each needed source once and summarizes every metric.
// Metrics whose source is missing are skipped with a warning.
func computeSummaries(ctx context.Context, out io.Writer, cfg *config.Config, metrics []model.Metric) ([]model.Summary, error) {
	var kinds []model.SourceKind
	seen := make(map[model.SourceKind]bool)
	for _, m := range metrics {
		kind, err := model.SourceFor(m)
		if err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}

	sources, err := loadSources(ctx, out, cfg, kinds)
	if err != nil {
		return nil, err
	}

	var all []model.Summary
	for _, m := range metrics {
		kind, _ := model.SourceFor(m)
		src := sources[kind]
		if src.err != nil {
			if !common.IsSkippable(src.err) {
				return nil, src.err
			}
			common.LogWarn(src.err, "Skipping metric", common.Fields{"metric": m, "source": kind})
			fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipping %s: %v", m, src.err)))
			continue
		}

		order := cfg.EvaluationOrder()
		if kind == model.SourceAcume {
			order = model.FilenameOrder
		}

		summaries, err := summary.Compute(cfg.Project, src.rows, m, cfg.Classifiers, order)
		if err != nil {
			return nil, err
		}
		all = append(all, summaries...)
	}
	return all, nil
}
