package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "BOOKKEEPER", cfg.Project)
	assert.Equal(t, "../wekaFiles/bookkeeper/classificationResults.csv", cfg.EvaluationPath)
	assert.Equal(t, "../finalAcumeFiles/bookkeeper_acume.csv", cfg.AcumePath)
	assert.Equal(t, "bookkeeper", cfg.OutputDir)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, []string{"IBk", "NaiveBayes", "RandomForest"}, cfg.Classifiers)
	assert.Equal(t, model.ColumnOrder, cfg.EvaluationOrder())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `project: SYNCOPE
inputs:
  evaluation: /data/{project}/results.csv
output:
  dir: /out/{project}
  dpi: 150
classifiers: [J48, IBk]
charts:
  order: full
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "SYNCOPE", cfg.Project)
	assert.Equal(t, "/data/syncope/results.csv", cfg.EvaluationPath)
	assert.Equal(t, "../finalAcumeFiles/syncope_acume.csv", cfg.AcumePath)
	assert.Equal(t, "/out/syncope", cfg.OutputDir)
	assert.Equal(t, 150, cfg.DPI)
	assert.Equal(t, []string{"J48", "IBk"}, cfg.Classifiers)
	assert.Equal(t, model.FilenameOrder, cfg.EvaluationOrder())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "bad order", key: "charts.order", val: "random"},
		{name: "negative dpi", key: "output.dpi", val: -1},
		{name: "blank classifier", key: "classifiers", val: []string{"IBk", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestInputPath(t *testing.T) {
	cfg := &Config{EvaluationPath: "eval.csv", AcumePath: "acume.csv"}

	p, err := cfg.InputPath(model.SourceEvaluation)
	require.NoError(t, err)
	assert.Equal(t, "eval.csv", p)

	p, err = cfg.InputPath(model.SourceAcume)
	require.NoError(t, err)
	assert.Equal(t, "acume.csv", p)

	_, err = cfg.InputPath("weka")
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestExpandProjectPath(t *testing.T) {
	t.Setenv("TECHPLOT_TEST_ROOT", "/srv")

	assert.Equal(t, "/srv/bookkeeper/out", ExpandProjectPath("$TECHPLOT_TEST_ROOT/{project}/out", "BOOKKEEPER"))
	assert.Equal(t, "", ExpandProjectPath("", "X"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "syncope"), ExpandProjectPath("~/{project}", "Syncope"))
}
