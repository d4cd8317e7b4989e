package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummaryTable(&buf, []model.Summary{
		{Metric: model.MetricKappa, Classifier: "IBk", Technique: model.TechniqueBestFirstSMOTE, Count: 10, Min: 0.1, Q1: 0.2, Median: 0.25, Q3: 0.3, Max: 0.4, Mean: 0.26},
		{Metric: model.MetricKappa, Classifier: "RandomForest", Technique: model.TechniqueNone, Count: 3, Min: 0.5, Q1: 0.5, Median: 0.6, Q3: 0.7, Max: 0.7, Mean: 0.6},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Median")
	assert.Contains(t, lines[2], "BestFirst + SMOTE")
	assert.Contains(t, lines[2], "0.250")
	assert.Contains(t, lines[3], "RandomForest")
	assert.Contains(t, lines[3], "0.600")
}

func TestWriteSummaryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaryTable(&buf, nil))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2)
	p.Step()
	p.Step()
	p.Finish()
	assert.Contains(t, buf.String(), "Rendering charts")
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatWarning("skipped"), "skipped")
	assert.Contains(t, FormatError("failed"), "failed")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("Charts"), "Charts")
	assert.Contains(t, RenderBox("Summary", "3 charts"), "3 charts")
}
