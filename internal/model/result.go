// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Metric names a numeric column of a result file.
type Metric string

// Metric constants match the CSV headers written by the evaluation pipeline.
const (
	MetricNPofB20   Metric = "Npofb20"
	MetricF1Score   Metric = "F1-Score"
	MetricAUC       Metric = "AUC"
	MetricKappa     Metric = "Kappa"
	MetricPrecision Metric = "Precision"
	MetricRecall    Metric = "Recall"
	MetricMCC       Metric = "MCC"
)

// SourceKind identifies how a result file encodes the applied techniques.
type SourceKind string

const (
	// SourceEvaluation is a classification results file with FeatureSelection,
	// Sampling and CostSensitive columns.
	SourceEvaluation SourceKind = "evaluation"
	// SourceAcume is an ACUME results file whose Filename column encodes the techniques.
	SourceAcume SourceKind = "acume"
)

// ParseSourceKind converts a user supplied string to a SourceKind.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(s) {
	case SourceEvaluation, SourceAcume:
		return SourceKind(s), nil
	default:
		return "", fmt.Errorf("unknown source kind %q (want %s or %s)", s, SourceEvaluation, SourceAcume)
	}
}

// Metrics lists the metrics a source kind provides.
func (k SourceKind) Metrics() []Metric {
	switch k {
	case SourceAcume:
		return []Metric{MetricNPofB20}
	case SourceEvaluation:
		return []Metric{MetricPrecision, MetricRecall, MetricAUC, MetricKappa, MetricF1Score, MetricMCC}
	default:
		return nil
	}
}

// SourceFor returns the kind of result file that provides metric.
func SourceFor(metric Metric) (SourceKind, error) {
	for _, kind := range []SourceKind{SourceAcume, SourceEvaluation} {
		for _, m := range kind.Metrics() {
			if m == metric {
				return kind, nil
			}
		}
	}
	return "", fmt.Errorf("unknown metric %q", metric)
}

// ResultRow is a labeled record from a result file.
type ResultRow struct {
	Metrics    map[Metric]float64
	Project    string
	Classifier string
	Filename   string
	Technique  TechniqueLabel
	Iteration  int
}

// Value returns the row's value for metric and whether the row has it.
func (r ResultRow) Value(metric Metric) (float64, bool) {
	v, ok := r.Metrics[metric]
	return v, ok
}
