package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/techplot/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidSummary = errors.New("invalid summary")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSummaries validates a slice of summaries.
func validateSummaries(summaries []model.Summary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("%w: summaries", ErrEmptySlice)
	}

	for i := range summaries {
		if err := validateSummary(&summaries[i]); err != nil {
			return fmt.Errorf("summary at index %d: %w", i, err)
		}
	}
	return nil
}

// validateSummary validates a single summary.
func validateSummary(s *model.Summary) error {
	if strings.TrimSpace(s.Project) == "" {
		return fmt.Errorf("%w: missing project", ErrInvalidSummary)
	}
	if s.Metric == "" {
		return fmt.Errorf("%w: missing metric", ErrInvalidSummary)
	}
	if strings.TrimSpace(s.Classifier) == "" {
		return fmt.Errorf("%w: missing classifier", ErrInvalidSummary)
	}
	if s.Technique == "" {
		return fmt.Errorf("%w: missing technique", ErrInvalidSummary)
	}
	if s.Count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidSummary)
	}
	for _, v := range []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite statistic", ErrInvalidSummary)
		}
	}
	return nil
}
