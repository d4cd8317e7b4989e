// Package results loads classification result files and labels their rows by technique.
package results

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Veraticus/techplot/internal/common"
	"github.com/Veraticus/techplot/internal/model"
	"github.com/Veraticus/techplot/internal/technique"
	"github.com/gocarina/gocsv"
)

// LoadFile reads and labels the result file at path.
// A missing file is reported as common.ErrSourceNotFound.
func LoadFile(ctx context.Context, kind model.SourceKind, path string) ([]model.ResultRow, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close result file", "path", path, "error", closeErr)
		}
	}()

	rows, err := Read(ctx, kind, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Debug("Loaded result file", "path", path, "source", kind, "rows", len(rows))
	return rows, nil
}

// Read parses result records of the given kind from r and labels each row.
func Read(ctx context.Context, kind model.SourceKind, r io.Reader) ([]model.ResultRow, error) {
	switch kind {
	case model.SourceEvaluation:
		var records []*evaluationRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return nil, fmt.Errorf("failed to parse evaluation results: %w", err)
		}
		return toRows(ctx, records)
	case model.SourceAcume:
		var records []*acumeRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return nil, fmt.Errorf("failed to parse ACUME results: %w", err)
		}
		return toRows(ctx, records)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownSource, kind)
	}
}

// WriteLabeled reads records of the given kind from r and writes them to w with a
// Technique column filled in. It returns the number of records written.
func WriteLabeled(ctx context.Context, kind model.SourceKind, r io.Reader, w io.Writer) (int, error) {
	switch kind {
	case model.SourceEvaluation:
		var records []*evaluationRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return 0, fmt.Errorf("failed to parse evaluation results: %w", err)
		}
		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			rec.Technique = rec.label().String()
		}
		return len(records), marshal(&records, w)
	case model.SourceAcume:
		var records []*acumeRecord
		if err := gocsv.Unmarshal(r, &records); err != nil {
			return 0, fmt.Errorf("failed to parse ACUME results: %w", err)
		}
		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			rec.Classifier = technique.ClassifierName(rec.Filename)
			rec.Technique = rec.label().String()
		}
		return len(records), marshal(&records, w)
	default:
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownSource, kind)
	}
}

type record interface {
	row() (model.ResultRow, error)
}

func toRows[T record](ctx context.Context, records []T) ([]model.ResultRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no result rows", common.ErrNoData)
	}

	rows := make([]model.ResultRow, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rec.row()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func marshal(records any, w io.Writer) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("failed to write labeled results: %w", err)
	}
	return nil
}
