package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/technique"
)

// Metric cells are kept as text so blank cells survive a round trip and read as NaN.

// evaluationRecord is one line of classificationResults.csv.
type evaluationRecord struct {
	Project          string `csv:"Project"`
	Iteration        int    `csv:"Iteration"`
	Classifier       string `csv:"Classifier"`
	FeatureSelection string `csv:"FeatureSelection"`
	Sampling         string `csv:"Sampling"`
	CostSensitive    string `csv:"CostSensitive"`
	Precision        string `csv:"Precision"`
	Recall           string `csv:"Recall"`
	AUC              string `csv:"AUC"`
	Kappa            string `csv:"Kappa"`
	F1Score          string `csv:"F1-Score"`
	MCC              string `csv:"MCC"`
	Technique        string `csv:"Technique"`
}

func (r *evaluationRecord) label() model.TechniqueLabel {
	return technique.FromColumns(r.FeatureSelection, r.Sampling, r.CostSensitive)
}

func (r *evaluationRecord) row() (model.ResultRow, error) {
	metrics, err := parseMetrics(map[model.Metric]string{
		model.MetricPrecision: r.Precision,
		model.MetricRecall:    r.Recall,
		model.MetricAUC:       r.AUC,
		model.MetricKappa:     r.Kappa,
		model.MetricF1Score:   r.F1Score,
		model.MetricMCC:       r.MCC,
	})
	if err != nil {
		return model.ResultRow{}, fmt.Errorf("iteration %d of %s: %w", r.Iteration, r.Classifier, err)
	}

	return model.ResultRow{
		Project:    r.Project,
		Iteration:  r.Iteration,
		Classifier: r.Classifier,
		Technique:  r.label(),
		Metrics:    metrics,
	}, nil
}

// acumeRecord is one line of an aggregated ACUME results file.
type acumeRecord struct {
	Filename   string `csv:"Filename"`
	Npofb20    string `csv:"Npofb20"`
	Classifier string `csv:"Classifier"`
	Technique  string `csv:"Technique"`
}

func (r *acumeRecord) label() model.TechniqueLabel {
	return technique.FromFilename(r.Filename)
}

func (r *acumeRecord) row() (model.ResultRow, error) {
	metrics, err := parseMetrics(map[model.Metric]string{
		model.MetricNPofB20: r.Npofb20,
	})
	if err != nil {
		return model.ResultRow{}, fmt.Errorf("%s: %w", r.Filename, err)
	}

	return model.ResultRow{
		Filename:   r.Filename,
		Classifier: technique.ClassifierName(r.Filename),
		Technique:  r.label(),
		Metrics:    metrics,
	}, nil
}

func parseMetrics(cells map[model.Metric]string) (map[model.Metric]float64, error) {
	metrics := make(map[model.Metric]float64, len(cells))
	for metric, cell := range cells {
		v, err := parseMetric(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", metric, cell, err)
		}
		metrics[metric] = v
	}
	return metrics, nil
}

// parseMetric reads a metric cell. Blank cells are missing values and read as NaN.
func parseMetric(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}
