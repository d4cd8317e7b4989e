package model

// TechniqueLabel names the preprocessing technique(s) applied to produce a result row.
type TechniqueLabel string

// Known technique labels.
const (
	TechniqueNone               TechniqueLabel = "none"
	TechniqueBestFirst          TechniqueLabel = "BestFirst"
	TechniqueSMOTE              TechniqueLabel = "SMOTE"
	TechniqueSensitive          TechniqueLabel = "Sensitive"
	TechniqueBestFirstSMOTE     TechniqueLabel = "BestFirst + SMOTE"
	TechniqueBestFirstSensitive TechniqueLabel = "BestFirst + Sensitive"
)

// LabelSeparator joins the tags of a combined technique label.
const LabelSeparator = " + "

// FilenameOrder is the display order used by charts built from filename-encoded results.
var FilenameOrder = []TechniqueLabel{
	TechniqueNone,
	TechniqueBestFirst,
	TechniqueSMOTE,
	TechniqueSensitive,
	TechniqueBestFirstSMOTE,
	TechniqueBestFirstSensitive,
}

// ColumnOrder is the display order used by charts built from column-encoded results.
var ColumnOrder = []TechniqueLabel{
	TechniqueNone,
	TechniqueBestFirst,
	TechniqueSMOTE,
	TechniqueSensitive,
}

// String returns the label text.
func (l TechniqueLabel) String() string {
	return string(l)
}

// IndexIn returns the position of the label in order, or -1 when the order does not contain it.
func (l TechniqueLabel) IndexIn(order []TechniqueLabel) int {
	for i, o := range order {
		if o == l {
			return i
		}
	}
	return -1
}
