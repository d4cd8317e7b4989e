package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceKind(t *testing.T) {
	k, err := ParseSourceKind("acume")
	require.NoError(t, err)
	assert.Equal(t, SourceAcume, k)

	k, err = ParseSourceKind("evaluation")
	require.NoError(t, err)
	assert.Equal(t, SourceEvaluation, k)

	_, err = ParseSourceKind("Evaluation")
	assert.Error(t, err)
}

func TestSourceFor(t *testing.T) {
	tests := []struct {
		metric Metric
		want   SourceKind
	}{
		{MetricNPofB20, SourceAcume},
		{MetricF1Score, SourceEvaluation},
		{MetricAUC, SourceEvaluation},
		{MetricKappa, SourceEvaluation},
		{MetricPrecision, SourceEvaluation},
		{MetricRecall, SourceEvaluation},
		{MetricMCC, SourceEvaluation},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			got, err := SourceFor(tt.metric)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SourceFor("Popt")
	assert.Error(t, err)
}

func TestTechniqueLabel_IndexIn(t *testing.T) {
	assert.Equal(t, 0, TechniqueNone.IndexIn(ColumnOrder))
	assert.Equal(t, 3, TechniqueSensitive.IndexIn(ColumnOrder))
	assert.Equal(t, -1, TechniqueBestFirstSMOTE.IndexIn(ColumnOrder))
	assert.Equal(t, 4, TechniqueBestFirstSMOTE.IndexIn(FilenameOrder))
	assert.Equal(t, -1, TechniqueLabel("SMOTE + Sensitive").IndexIn(FilenameOrder))
}

func TestSummary_IQR(t *testing.T) {
	assert.InDelta(t, 0.3, Summary{Q1: 0.2, Q3: 0.5}.IQR(), 1e-9)
}
