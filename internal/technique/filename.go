// Package technique derives technique labels from result filenames and result columns.
package technique

import (
	"sort"
	"strings"

	"github.com/Veraticus/techplot/internal/model"
)

// Indicator maps one or more filename markers to a technique tag.
type Indicator struct {
	Tag     string
	Markers []string
}

// DefaultIndicators returns the markers written by the evaluation pipeline into ACUME filenames.
func DefaultIndicators() []Indicator {
	return []Indicator{
		{Tag: "BestFirst", Markers: []string{"BestFirst"}},
		{Tag: "SMOTE", Markers: []string{"SMOTE"}},
		{Tag: "Sensitive", Markers: []string{"Sensitive", "CostSensitive"}},
	}
}

var defaultIndicators = DefaultIndicators()

// FromFilename labels a result by the indicator markers found in its filename.
// Matching is case-sensitive. Matched tags are sorted before joining so the label
// does not depend on where the markers appear in the filename.
func FromFilename(filename string) model.TechniqueLabel {
	return MatchIndicators(defaultIndicators, filename)
}

// MatchIndicators labels filename using the given indicator table.
func MatchIndicators(indicators []Indicator, filename string) model.TechniqueLabel {
	var tags []string
	for _, ind := range indicators {
		if ind.matches(filename) {
			tags = append(tags, ind.Tag)
		}
	}

	if len(tags) == 0 {
		return model.TechniqueNone
	}

	sort.Strings(tags)
	return model.TechniqueLabel(strings.Join(tags, model.LabelSeparator))
}

func (i Indicator) matches(filename string) bool {
	for _, marker := range i.Markers {
		if strings.Contains(filename, marker) {
			return true
		}
	}
	return false
}

// ClassifierName returns the classifier encoded at the start of an ACUME filename,
// e.g. "RandomForest" for "RandomForest_BestFirst_SMOTE_run3".
func ClassifierName(filename string) string {
	name, _, _ := strings.Cut(filename, "_")
	return name
}
