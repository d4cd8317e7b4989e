package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/techplot/internal/chart"
	"github.com/Veraticus/techplot/internal/cli"
	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/config"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/results"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type plotOptions struct {
	workers  int
	progress bool
}

// plotReport counts the outcome of a plot run.
type plotReport struct {
	Rendered []string
	Skipped  []string
	Failed   []string
}

func plotCmd() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot [chart...]",
		Short: "Render box plot charts",
		Long: fmt.Sprintf(`Render box plot charts of result metrics per classifier and technique.

Without arguments every chart is rendered. Available charts: %s.
A chart whose result file is missing is skipped; the other charts are still rendered.`,
			strings.Join(chart.Names(chart.DefaultSpecs(model.ColumnOrder)), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			specs, err := chart.Select(chart.DefaultSpecs(cfg.EvaluationOrder()), args)
			if err != nil {
				return common.NewUserError("cannot plot", err)
			}

			report, err := runPlot(cmd.Context(), cmd.OutOrStdout(), cfg, specs, opts)
			if err != nil {
				return err
			}
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d chart(s) failed: %s", len(report.Failed), strings.Join(report.Failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output directory (default: output.dir from config)")
	cmd.Flags().Int("dpi", config.DefaultDPI, "image resolution")
	cmd.Flags().String("order", config.OrderColumn, "technique order for evaluation charts (column, full)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "charts rendered in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&opts.progress, "progress", true, "show a progress bar")

	_ = viper.BindPFlag("output.dir", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.dpi", cmd.Flags().Lookup("dpi"))
	_ = viper.BindPFlag("charts.order", cmd.Flags().Lookup("order"))

	return cmd
}

// runPlot loads every source the specs need and renders the charts. Charts whose source
// is missing are reported and skipped.
func runPlot(ctx context.Context, out io.Writer, cfg *config.Config, specs []chart.Spec, opts plotOptions) (*plotReport, error) {
	report := &plotReport{}

	sources, err := loadSources(ctx, out, cfg, sourcesOf(specs))
	if err != nil {
		return nil, err
	}

	var jobs []chart.Job
	for _, spec := range specs {
		src := sources[spec.Source]
		if src.err != nil {
			if common.IsSkippable(src.err) {
				common.LogWarn(src.err, "Skipping chart", common.Fields{"chart": spec.Name, "source": spec.Source})
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipping %s: %v", spec.Name, src.err)))
				report.Skipped = append(report.Skipped, spec.Name)
			} else {
				common.LogError(src.err, "Cannot render chart", common.Fields{"chart": spec.Name, "source": spec.Source})
				fmt.Fprintln(out, cli.FormatError(fmt.Sprintf("%s: %v", spec.Name, src.err)))
				report.Failed = append(report.Failed, spec.Name)
			}
			continue
		}
		jobs = append(jobs, chart.Job{Spec: spec, Rows: src.rows})
	}

	if len(jobs) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No charts to render"))
		return report, nil
	}

	var progress *cli.Progress
	if opts.progress {
		progress = cli.NewProgress(out, len(jobs))
	}

	pipeline := &chart.Pipeline{
		Renderer:  chart.NewRenderer(cfg.Classifiers, cfg.DPI),
		Project:   cfg.Project,
		OutputDir: cfg.OutputDir,
		Workers:   opts.workers,
		OnDone: func(chart.Result) {
			if progress != nil {
				progress.Step()
			}
		},
	}

	rendered, err := pipeline.Run(ctx, jobs)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("plot interrupted: %w", err)
	}

	for _, res := range rendered {
		if res.Err != nil {
			common.LogError(res.Err, "Chart failed", common.Fields{"chart": res.Name})
			fmt.Fprintln(out, cli.FormatError(fmt.Sprintf("%s: %v", res.Name, res.Err)))
			report.Failed = append(report.Failed, res.Name)
			continue
		}
		common.LogInfo("Chart saved", common.Fields{"chart": res.Name, "path": res.Path})
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Saved %s", res.Path)))
		report.Rendered = append(report.Rendered, res.Name)
	}

	fmt.Fprintln(out, cli.RenderBox(
		fmt.Sprintf("Charts for %s", cfg.Project),
		fmt.Sprintf("Rendered: %d\nSkipped:  %d\nFailed:   %d", len(report.Rendered), len(report.Skipped), len(report.Failed)),
	))

	return report, nil
}

type loadedSource struct {
	err  error
	rows []model.ResultRow
}

// loadSources reads each source kind once. Per-source failures are returned in the map;
// only context cancellation is returned as an error.
func loadSources(ctx context.Context, out io.Writer, cfg *config.Config, kinds []model.SourceKind) (map[model.SourceKind]loadedSource, error) {
	sources := make(map[model.SourceKind]loadedSource, len(kinds))
	for _, kind := range kinds {
		path, err := cfg.InputPath(kind)
		if err != nil {
			sources[kind] = loadedSource{err: err}
			continue
		}

		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Loading %s results from %s", kind, path)))
		rows, err := results.LoadFile(ctx, kind, path)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		sources[kind] = loadedSource{rows: rows, err: err}
	}
	return sources, nil
}

func sourcesOf(specs []chart.Spec) []model.SourceKind {
	var kinds []model.SourceKind
	seen := make(map[model.SourceKind]bool)
	for _, s := range specs {
		if !seen[s.Source] {
			seen[s.Source] = true
			kinds = append(kinds, s.Source)
		}
	}
	return kinds
}
