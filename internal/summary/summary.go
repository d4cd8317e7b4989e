// Package summary computes per-technique distribution statistics of result metrics.
package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/montanaflynn/stats"
)

// Groups holds metric values keyed by classifier and then technique.
type Groups map[string]map[model.TechniqueLabel][]float64

// Group collects the values of metric from rows. NaN values and rows without the
// metric are skipped.
func Group(rows []model.ResultRow, metric model.Metric) Groups {
	groups := make(Groups)
	for _, row := range rows {
		v, ok := row.Value(metric)
		if !ok || math.IsNaN(v) {
			continue
		}
		byLabel, ok := groups[row.Classifier]
		if !ok {
			byLabel = make(map[model.TechniqueLabel][]float64)
			groups[row.Classifier] = byLabel
		}
		byLabel[row.Technique] = append(byLabel[row.Technique], v)
	}
	return groups
}

// Values returns the values collected for a classifier and technique.
func (g Groups) Values(classifier string, label model.TechniqueLabel) []float64 {
	return g[classifier][label]
}

// Classifiers returns the classifier names in sorted order.
func (g Groups) Classifiers() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dropped counts the values whose technique is not part of order.
func (g Groups) Dropped(order []model.TechniqueLabel) int {
	n := 0
	for _, byLabel := range g {
		for label, values := range byLabel {
			if label.IndexIn(order) < 0 {
				n += len(values)
			}
		}
	}
	return n
}

// Compute summarizes metric for each classifier and each technique in order.
// When classifiers is empty every classifier present in rows is used.
// Groups without values are omitted.
func Compute(project string, rows []model.ResultRow, metric model.Metric, classifiers []string, order []model.TechniqueLabel) ([]model.Summary, error) {
	groups := Group(rows, metric)
	if len(classifiers) == 0 {
		classifiers = groups.Classifiers()
	}

	var out []model.Summary
	for _, clf := range classifiers {
		for _, label := range order {
			values := groups.Values(clf, label)
			if len(values) == 0 {
				continue
			}
			s, err := Describe(values)
			if err != nil {
				return nil, fmt.Errorf("failed to summarize %s/%s/%s: %w", metric, clf, label, err)
			}
			s.Project = project
			s.Classifier = clf
			s.Metric = metric
			s.Technique = label
			out = append(out, s)
		}
	}
	return out, nil
}

// Describe computes the five-number summary and mean of values.
func Describe(values []float64) (model.Summary, error) {
	data := stats.Float64Data(values)

	minV, err := stats.Min(data)
	if err != nil {
		return model.Summary{}, err
	}
	maxV, err := stats.Max(data)
	if err != nil {
		return model.Summary{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return model.Summary{}, err
	}

	s := model.Summary{
		Count: len(values),
		Min:   minV,
		Max:   maxV,
		Mean:  mean,
	}

	// Quartile needs at least two values to split the data into halves.
	if len(values) == 1 {
		s.Q1, s.Median, s.Q3 = values[0], values[0], values[0]
		return s, nil
	}

	q, err := stats.Quartile(data)
	if err != nil {
		return model.Summary{}, err
	}
	s.Q1, s.Median, s.Q3 = q.Q1, q.Q2, q.Q3
	return s, nil
}
