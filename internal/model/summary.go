package model

import "time"

// Summary describes the distribution of one metric for one classifier and technique.
type Summary struct {
	UpdatedAt  time.Time
	Project    string
	Classifier string
	Metric     Metric
	Technique  TechniqueLabel
	Count      int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	Mean       float64
}

// IQR returns the interquartile range.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}
