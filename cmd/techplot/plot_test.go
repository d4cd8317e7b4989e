package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/techplot/internal/chart"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlot_AllCharts(t *testing.T) {
	cfg := testConfig(t, testEvaluationCSV, testAcumeCSV)
	specs := chart.DefaultSpecs(cfg.EvaluationOrder())

	var out bytes.Buffer
	report, err := runPlot(context.Background(), &out, cfg, specs, plotOptions{workers: 2})
	require.NoError(t, err)

	assert.ElementsMatch(t, chart.Names(specs), report.Rendered)
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.Failed)

	for _, spec := range specs {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, spec.File))
		require.NoError(t, err, spec.Name)
		assert.Positive(t, info.Size(), spec.Name)
	}
	assert.Contains(t, out.String(), "Rendered: 4")
}

func TestRunPlot_MissingSourceIsSkipped(t *testing.T) {
	cfg := testConfig(t, testEvaluationCSV, "")
	specs := chart.DefaultSpecs(cfg.EvaluationOrder())

	var out bytes.Buffer
	report, err := runPlot(context.Background(), &out, cfg, specs, plotOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"npofb20"}, report.Skipped)
	assert.Len(t, report.Rendered, 3)
	assert.Empty(t, report.Failed)
	assert.Contains(t, out.String(), "Skipping npofb20")

	_, err = os.Stat(filepath.Join(cfg.OutputDir, "boxplot_npofb20.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunPlot_NothingToRender(t *testing.T) {
	cfg := testConfig(t, "", "")
	specs := chart.DefaultSpecs(cfg.EvaluationOrder())

	var out bytes.Buffer
	report, err := runPlot(context.Background(), &out, cfg, specs, plotOptions{})
	require.NoError(t, err)

	assert.Len(t, report.Skipped, len(specs))
	assert.Empty(t, report.Rendered)
	assert.Contains(t, out.String(), "No charts to render")
}

func TestRunPlot_Canceled(t *testing.T) {
	cfg := testConfig(t, testEvaluationCSV, testAcumeCSV)
	specs := chart.DefaultSpecs(cfg.EvaluationOrder())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runPlot(ctx, &bytes.Buffer{}, cfg, specs, plotOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourcesOf(t *testing.T) {
	kinds := sourcesOf(chart.DefaultSpecs(model.ColumnOrder))
	assert.Equal(t, []model.SourceKind{model.SourceAcume, model.SourceEvaluation}, kinds)
}

func TestPlotCmd_Flags(t *testing.T) {
	cmd := plotCmd()
	for _, flag := range []string{"output", "dpi", "order", "workers", "progress"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag --%s", flag)
	}
}
