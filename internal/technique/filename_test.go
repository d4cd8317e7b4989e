package technique

import (
	"testing"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     model.TechniqueLabel
	}{
		{name: "no markers", filename: "RandomForest_run1", want: model.TechniqueNone},
		{name: "empty", filename: "", want: model.TechniqueNone},
		{name: "best first only", filename: "IBk_BestFirst_run2", want: model.TechniqueBestFirst},
		{name: "smote only", filename: "NaiveBayes_SMOTE_run1", want: model.TechniqueSMOTE},
		{name: "cost sensitive marker", filename: "IBk_CostSensitive_run3", want: model.TechniqueSensitive},
		{name: "bare sensitive marker", filename: "IBk_SensitiveThreshold_iter4", want: model.TechniqueSensitive},
		{name: "best first and smote", filename: "RandomForest_BestFirst_SMOTE_run1", want: model.TechniqueBestFirstSMOTE},
		{name: "best first and sensitive", filename: "RandomForest_BestFirst_CostSensitive_run1", want: model.TechniqueBestFirstSensitive},
		{name: "smote and sensitive", filename: "IBk_SMOTE_CostSensitive_run1", want: "SMOTE + Sensitive"},
		{name: "all three", filename: "IBk_CostSensitive_SMOTE_BestFirst", want: "BestFirst + SMOTE + Sensitive"},
		{name: "matching is case sensitive", filename: "ibk_bestfirst_smote_costsensitive", want: model.TechniqueNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFilename(tt.filename))
		})
	}
}

func TestFromFilename_OrderIndependent(t *testing.T) {
	filenames := []string{
		"RandomForest_BestFirst_SMOTE_run1",
		"RandomForest_SMOTE_BestFirst_run1",
		"SMOTE-BestFirst",
		"xxBestFirstxxSMOTExx",
	}

	for _, f := range filenames {
		assert.Equal(t, model.TechniqueBestFirstSMOTE, FromFilename(f), f)
	}
}

func TestFromFilename_Idempotent(t *testing.T) {
	const filename = "NaiveBayes_BestFirst_CostSensitive_run7"

	first := FromFilename(filename)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FromFilename(filename))
	}
}

func TestMatchIndicators_CustomTable(t *testing.T) {
	indicators := []Indicator{
		{Tag: "Under", Markers: []string{"Undersample", "RUS"}},
		{Tag: "Bagging", Markers: []string{"Bagging"}},
	}

	assert.Equal(t, model.TechniqueLabel("Bagging + Under"), MatchIndicators(indicators, "J48_RUS_Bagging"))
	assert.Equal(t, model.TechniqueLabel("Under"), MatchIndicators(indicators, "J48_Undersample"))
	assert.Equal(t, model.TechniqueNone, MatchIndicators(nil, "J48_Undersample"))
}

func TestClassifierName(t *testing.T) {
	assert.Equal(t, "RandomForest", ClassifierName("RandomForest_BestFirst_SMOTE_run3"))
	assert.Equal(t, "IBk", ClassifierName("IBk"))
	assert.Equal(t, "", ClassifierName("_SMOTE"))
}
