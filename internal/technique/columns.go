package technique

import "github.com/Veraticus/techplot/internal/model"

// Sentinel marks a technique column whose technique was not applied.
const Sentinel = "none"

// Presence is the state a decision rule requires of one technique column.
type Presence int

const (
	// Any accepts both applied and not applied.
	Any Presence = iota
	// Applied requires a value other than the sentinel.
	Applied
	// Absent requires the sentinel.
	Absent
)

func (p Presence) accepts(value string) bool {
	switch p {
	case Applied:
		return value != Sentinel
	case Absent:
		return value == Sentinel
	default:
		return true
	}
}

// Rule is one row of the column decision table.
type Rule struct {
	Label            model.TechniqueLabel
	FeatureSelection Presence
	Sampling         Presence
	CostSensitive    Presence
}

// Matches reports whether the three column values satisfy the rule.
func (r Rule) Matches(featureSelection, sampling, costSensitive string) bool {
	return r.FeatureSelection.accepts(featureSelection) &&
		r.Sampling.accepts(sampling) &&
		r.CostSensitive.accepts(costSensitive)
}

// DecisionTable returns the rules in priority order. The first matching rule wins.
//
// Sampling together with CostSensitive but without FeatureSelection has no rule and
// labels as "none". Downstream charts rely on this fixed label set.
func DecisionTable() []Rule {
	return []Rule{
		{Label: model.TechniqueBestFirst, FeatureSelection: Applied, Sampling: Absent, CostSensitive: Absent},
		{Label: model.TechniqueSMOTE, FeatureSelection: Absent, Sampling: Applied, CostSensitive: Absent},
		{Label: model.TechniqueSensitive, FeatureSelection: Absent, Sampling: Absent, CostSensitive: Applied},
		{Label: model.TechniqueBestFirstSMOTE, FeatureSelection: Applied, Sampling: Applied, CostSensitive: Any},
		{Label: model.TechniqueBestFirstSensitive, FeatureSelection: Applied, Sampling: Any, CostSensitive: Applied},
	}
}

var decisionTable = DecisionTable()

// FromColumns labels a result from its FeatureSelection, Sampling and CostSensitive columns.
func FromColumns(featureSelection, sampling, costSensitive string) model.TechniqueLabel {
	for _, rule := range decisionTable {
		if rule.Matches(featureSelection, sampling, costSensitive) {
			return rule.Label
		}
	}
	return model.TechniqueNone
}
