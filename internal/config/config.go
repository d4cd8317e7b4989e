package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/spf13/viper"
)

// Order names accepted by charts.order.
const (
	OrderColumn = "column"
	OrderFull   = "full"
)

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultProject        = "BOOKKEEPER"
	DefaultEvaluationPath = "../wekaFiles/{project}/classificationResults.csv"
	DefaultAcumePath      = "../finalAcumeFiles/{project}_acume.csv"
	DefaultOutputDir      = "{project}"
	DefaultDPI            = 300
	DefaultDatabasePath   = "$HOME/.local/share/techplot/techplot.db"
)

// DefaultClassifiers are the classifiers the evaluation pipeline trains.
var DefaultClassifiers = []string{"IBk", "NaiveBayes", "RandomForest"}

// Config holds the resolved settings for a run.
type Config struct {
	Project        string
	EvaluationPath string
	AcumePath      string
	OutputDir      string
	Order          string
	DatabasePath   string
	Classifiers    []string
	DPI            int
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("project", DefaultProject)
	v.SetDefault("inputs.evaluation", DefaultEvaluationPath)
	v.SetDefault("inputs.acume", DefaultAcumePath)
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.dpi", DefaultDPI)
	v.SetDefault("classifiers", DefaultClassifiers)
	v.SetDefault("charts.order", OrderColumn)
	v.SetDefault("database.path", DefaultDatabasePath)
}

// Load resolves the configuration from v, expanding project placeholders and paths.
func Load(v *viper.Viper) (*Config, error) {
	project := strings.TrimSpace(v.GetString("project"))
	if project == "" {
		project = DefaultProject
	}

	cfg := &Config{
		Project:        project,
		EvaluationPath: ExpandProjectPath(stringOr(v, "inputs.evaluation", DefaultEvaluationPath), project),
		AcumePath:      ExpandProjectPath(stringOr(v, "inputs.acume", DefaultAcumePath), project),
		OutputDir:      ExpandProjectPath(stringOr(v, "output.dir", DefaultOutputDir), project),
		DatabasePath:   ExpandPath(stringOr(v, "database.path", DefaultDatabasePath)),
		Order:          stringOr(v, "charts.order", OrderColumn),
		Classifiers:    v.GetStringSlice("classifiers"),
		DPI:            v.GetInt("output.dpi"),
	}

	if len(cfg.Classifiers) == 0 {
		cfg.Classifiers = append([]string(nil), DefaultClassifiers...)
	}
	if cfg.DPI == 0 {
		cfg.DPI = DefaultDPI
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.DPI < 0 {
		return fmt.Errorf("%w: output.dpi must be positive, got %d", common.ErrInvalidConfig, c.DPI)
	}
	if c.Order != OrderColumn && c.Order != OrderFull {
		return fmt.Errorf("%w: charts.order must be %q or %q, got %q", common.ErrInvalidConfig, OrderColumn, OrderFull, c.Order)
	}
	for _, clf := range c.Classifiers {
		if strings.TrimSpace(clf) == "" {
			return fmt.Errorf("%w: empty classifier name", common.ErrInvalidConfig)
		}
	}
	return nil
}

// InputPath returns the configured input file for a source kind.
func (c *Config) InputPath(kind model.SourceKind) (string, error) {
	switch kind {
	case model.SourceEvaluation:
		return c.EvaluationPath, nil
	case model.SourceAcume:
		return c.AcumePath, nil
	default:
		return "", fmt.Errorf("%w: %s", common.ErrUnknownSource, kind)
	}
}

// EvaluationOrder returns the technique order for charts built from evaluation results.
func (c *Config) EvaluationOrder() []model.TechniqueLabel {
	if c.Order == OrderFull {
		return model.FilenameOrder
	}
	return model.ColumnOrder
}

func stringOr(v *viper.Viper, key, fallback string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return fallback
}
