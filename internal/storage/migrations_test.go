package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/techplot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store1, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Migrate(ctx))
	require.NoError(t, store1.SaveSummaries(ctx, []model.Summary{
		testSummary("ZOOKEEPER", model.MetricAUC, "NaiveBayes", model.TechniqueSMOTE, 0.8),
	}))
	require.NoError(t, store1.Close())

	// Repeated migration keeps existing rows.
	store2, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()
	require.NoError(t, store2.Migrate(ctx))

	got, err := store2.GetSummaries(ctx, "ZOOKEEPER", model.MetricAUC)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.8, got[0].Median, 1e-9)
}

func TestMigrate_NilContext(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer store.Close()

	//nolint:staticcheck // nil context is the case under test
	assert.ErrorIs(t, store.Migrate(nil), ErrNilContext)
}
