// Package chart renders grouped box plots of result metrics per classifier and technique.
package chart

import (
	"fmt"
	"image/color"

	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

// Panel is one row of box plots, drawn once per classifier.
type Panel struct {
	Color  color.Color
	Metric model.Metric
	YLabel string
}

// Spec describes one output image.
type Spec struct {
	Name   string
	Title  string
	File   string
	Source model.SourceKind
	Panels []Panel
	Order  []model.TechniqueLabel
	Width  vg.Length
	Height vg.Length
}

// FullTitle returns the figure title for project.
func (s Spec) FullTitle(project string) string {
	return fmt.Sprintf("%s for %s", s.Title, project)
}

// DefaultSpecs returns the standard charts. evaluationOrder is the technique order used by
// charts built from evaluation results; ACUME charts always use model.FilenameOrder.
func DefaultSpecs(evaluationOrder []model.TechniqueLabel) []Spec {
	return []Spec{
		{
			Name:   "npofb20",
			Title:  "NPofB20 distribution",
			File:   "boxplot_npofb20.png",
			Source: model.SourceAcume,
			Panels: []Panel{
				{Metric: model.MetricNPofB20, YLabel: "Npofb20", Color: colornames.Lightcoral},
			},
			Order:  model.FilenameOrder,
			Width:  18 * vg.Inch,
			Height: 5 * vg.Inch,
		},
		{
			Name:   "f1_auc",
			Title:  "F1-Score and AUC distribution",
			File:   "boxplot_f1_auc.png",
			Source: model.SourceEvaluation,
			Panels: []Panel{
				{Metric: model.MetricF1Score, YLabel: "F1-Score", Color: colornames.Lightskyblue},
				{Metric: model.MetricAUC, YLabel: "AUC", Color: colornames.Lightgreen},
			},
			Order:  evaluationOrder,
			Width:  18 * vg.Inch,
			Height: 10 * vg.Inch,
		},
		{
			Name:   "kappa",
			Title:  "Kappa distribution",
			File:   "boxplot_kappa.png",
			Source: model.SourceEvaluation,
			Panels: []Panel{
				{Metric: model.MetricKappa, YLabel: "Kappa", Color: colornames.Lightsalmon},
			},
			Order:  evaluationOrder,
			Width:  18 * vg.Inch,
			Height: 5 * vg.Inch,
		},
		{
			Name:   "prec_recall",
			Title:  "Precision and Recall distribution",
			File:   "boxplot_prec_recall.png",
			Source: model.SourceEvaluation,
			Panels: []Panel{
				{Metric: model.MetricPrecision, YLabel: "Precision", Color: colornames.Lightskyblue},
				{Metric: model.MetricRecall, YLabel: "Recall", Color: colornames.Lightgreen},
			},
			Order:  evaluationOrder,
			Width:  18 * vg.Inch,
			Height: 10 * vg.Inch,
		},
	}
}

// Select returns the specs with the given names, in the order requested.
// No names selects every spec.
func Select(specs []Spec, names []string) ([]Spec, error) {
	if len(names) == 0 {
		return specs, nil
	}

	byName := make(map[string]Spec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	selected := make([]Spec, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownChart, name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// Names returns the names of specs.
func Names(specs []Spec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
