package chart

import (
	"testing"

	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs(model.ColumnOrder)

	assert.Equal(t, []string{"npofb20", "f1_auc", "kappa", "prec_recall"}, Names(specs))

	byName := make(map[string]Spec)
	for _, s := range specs {
		byName[s.Name] = s
		assert.NotEmpty(t, s.File)
		assert.NotEmpty(t, s.Panels)
		for _, p := range s.Panels {
			assert.Contains(t, s.Source.Metrics(), p.Metric, "%s plots a metric its source lacks", s.Name)
		}
	}

	assert.Equal(t, model.SourceAcume, byName["npofb20"].Source)
	assert.Equal(t, model.FilenameOrder, byName["npofb20"].Order)
	assert.Equal(t, model.ColumnOrder, byName["kappa"].Order)

	prec := byName["prec_recall"]
	require.Len(t, prec.Panels, 2)
	assert.Equal(t, model.MetricPrecision, prec.Panels[0].Metric)
	assert.Equal(t, model.MetricRecall, prec.Panels[1].Metric)

	full := DefaultSpecs(model.FilenameOrder)
	assert.Equal(t, model.FilenameOrder, full[1].Order)
}

func TestSelect(t *testing.T) {
	specs := DefaultSpecs(model.ColumnOrder)

	all, err := Select(specs, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	some, err := Select(specs, []string{"kappa", "npofb20"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kappa", "npofb20"}, Names(some))

	_, err = Select(specs, []string{"roc"})
	assert.ErrorIs(t, err, common.ErrUnknownChart)
}

func TestSpec_FullTitle(t *testing.T) {
	s := Spec{Title: "Kappa distribution"}
	assert.Equal(t, "Kappa distribution for BOOKKEEPER", s.FullTitle("BOOKKEEPER"))
}
