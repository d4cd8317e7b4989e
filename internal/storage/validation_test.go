package storage

import (
	"context"
	"math"
	"testing"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{name: "valid context", ctx: context.Background()},
		{name: "nil context", ctx: nil, wantErr: true},
		{name: "canceled context still valid", ctx: canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNilContext)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name    string
		str     string
		wantErr bool
	}{
		{name: "project name", str: "BOOKKEEPER"},
		{name: "empty", str: "", wantErr: true},
		{name: "whitespace only", str: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, "project")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyString)
				assert.Contains(t, err.Error(), "project")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSummary(t *testing.T) {
	valid := testSummary("BOOKKEEPER", model.MetricKappa, "IBk", model.TechniqueBestFirst, 0.4)

	tests := []struct {
		mutate  func(s *model.Summary)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(*model.Summary) {}},
		{name: "missing project", mutate: func(s *model.Summary) { s.Project = " " }, wantErr: true},
		{name: "missing metric", mutate: func(s *model.Summary) { s.Metric = "" }, wantErr: true},
		{name: "missing classifier", mutate: func(s *model.Summary) { s.Classifier = "" }, wantErr: true},
		{name: "missing technique", mutate: func(s *model.Summary) { s.Technique = "" }, wantErr: true},
		{name: "zero count", mutate: func(s *model.Summary) { s.Count = 0 }, wantErr: true},
		{name: "NaN median", mutate: func(s *model.Summary) { s.Median = math.NaN() }, wantErr: true},
		{name: "infinite max", mutate: func(s *model.Summary) { s.Max = math.Inf(1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := validateSummary(&s)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSummary)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSummaries_Empty(t *testing.T) {
	assert.ErrorIs(t, validateSummaries(nil), ErrEmptySlice)
}
