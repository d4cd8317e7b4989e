package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/Veraticus/techplot/internal/model"
)

// SaveSummaries stores summaries in a single transaction. For every (project, metric)
// present in summaries the stored groups are replaced, so groups that no longer occur
// in the results are removed.
func (s *SQLiteStorage) SaveSummaries(ctx context.Context, summaries []model.Summary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSummaries(summaries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := clearMetrics(ctx, tx, summaries); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO summaries (project, metric, classifier, technique, count, min, q1, median, q3, max, mean, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(project, metric, classifier, technique) DO UPDATE SET
			count = excluded.count,
			min = excluded.min,
			q1 = excluded.q1,
			median = excluded.median,
			q3 = excluded.q3,
			max = excluded.max,
			mean = excluded.mean,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, sum := range summaries {
		_, err := stmt.ExecContext(ctx,
			sum.Project,
			string(sum.Metric),
			sum.Classifier,
			string(sum.Technique),
			sum.Count,
			sum.Min,
			sum.Q1,
			sum.Median,
			sum.Q3,
			sum.Max,
			sum.Mean,
		)
		if err != nil {
			return fmt.Errorf("failed to save summary %s/%s/%s: %w", sum.Metric, sum.Classifier, sum.Technique, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit summaries: %w", err)
	}
	return nil
}

// clearMetrics deletes the stored summaries of each (project, metric) pair in summaries.
func clearMetrics(ctx context.Context, q queryable, summaries []model.Summary) error {
	type key struct {
		project string
		metric  model.Metric
	}

	seen := make(map[key]bool)
	for _, sum := range summaries {
		k := key{project: sum.Project, metric: sum.Metric}
		if seen[k] {
			continue
		}
		seen[k] = true

		if _, err := q.ExecContext(ctx, `DELETE FROM summaries WHERE project = ? AND metric = ?`, k.project, string(k.metric)); err != nil {
			return fmt.Errorf("failed to clear %s summaries of %s: %w", k.metric, k.project, err)
		}
	}
	return nil
}

// GetSummaries returns the stored summaries of a project. An empty metric returns all metrics.
// Results are ordered by metric, classifier and then display order of the technique.
func (s *SQLiteStorage) GetSummaries(ctx context.Context, project string, metric model.Metric) ([]model.Summary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(project, "project"); err != nil {
		return nil, err
	}

	return s.getSummariesTx(ctx, s.db, project, metric)
}

func (s *SQLiteStorage) getSummariesTx(ctx context.Context, q queryable, project string, metric model.Metric) ([]model.Summary, error) {
	query := `
		SELECT project, metric, classifier, technique, count, min, q1, median, q3, max, mean, updated_at
		FROM summaries
		WHERE project = ?`
	args := []any{project}
	if metric != "" {
		query += ` AND metric = ?`
		args = append(args, string(metric))
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var out []model.Summary
	for rows.Next() {
		var (
			sum                  model.Summary
			metricStr, labelText string
		)
		if err := rows.Scan(
			&sum.Project,
			&metricStr,
			&sum.Classifier,
			&labelText,
			&sum.Count,
			&sum.Min,
			&sum.Q1,
			&sum.Median,
			&sum.Q3,
			&sum.Max,
			&sum.Mean,
			&sum.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		sum.Metric = model.Metric(metricStr)
		sum.Technique = model.TechniqueLabel(labelText)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	sortSummaries(out)
	return out, nil
}

// ListProjects returns the projects with stored summaries.
func (s *SQLiteStorage) ListProjects(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT project FROM summaries ORDER BY project`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes every summary of a project and returns how many were removed.
func (s *SQLiteStorage) DeleteProject(ctx context.Context, project string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(project, "project"); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE project = ?`, project)
	if err != nil {
		return 0, fmt.Errorf("failed to delete summaries: %w", err)
	}
	return res.RowsAffected()
}

func sortSummaries(summaries []model.Summary) {
	rank := func(l model.TechniqueLabel) int {
		if i := l.IndexIn(model.FilenameOrder); i >= 0 {
			return i
		}
		return len(model.FilenameOrder)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		if a.Classifier != b.Classifier {
			return a.Classifier < b.Classifier
		}
		if ra, rb := rank(a.Technique), rank(b.Technique); ra != rb {
			return ra < rb
		}
		return a.Technique < b.Technique
	})
}
