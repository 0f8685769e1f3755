package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsheet-engine/internal/pipeline"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "jobsheet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	started := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	rep := pipeline.Report{
		Accepted:         3,
		Duplicates:       2,
		ExtractionErrors: 1,
		PortalErrors:     []pipeline.PortalError{{Portal: "Indeed", Err: errors.New("503")}},
	}
	require.NoError(t, j.Record(ctx, started, started.Add(time.Minute), rep, nil))

	entries, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, 3, e.Accepted)
	assert.Equal(t, 2, e.Duplicates)
	assert.Equal(t, 1, e.ExtractionErrors)
	assert.Equal(t, 1, e.PortalErrors)
	assert.Empty(t, e.Error)
	assert.True(t, started.Equal(e.StartedAt), "got %v", e.StartedAt)
}

func TestRecordFailedRun(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, j.Record(ctx, now, now, pipeline.Report{}, errors.New("sheet store unavailable during read: 401")))

	entries, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Error, "401")
}

func TestRecentNewestFirst(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		started := base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, j.Record(ctx, started, started.Add(time.Minute), pipeline.Report{Accepted: i}, nil))
	}

	entries, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Accepted)
	assert.Equal(t, 1, entries[1].Accepted)
}
