package entry_log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_AppendAssignsIDAndDefaults(t *testing.T) {
	store := NewInMemoryStore()
	id, err := store.Append(LogEntry{Meal: "coffee", PainLevel: 3, StressLevel: 2})
	require.NoError(t, err)
	require.NotEqual(t, EntryID{}, id)

	snap, err := store.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len())

	e := snap.Entries()[0]
	require.Equal(t, id, e.ID)
	require.False(t, e.LoggedAt.IsZero())
	// IngestedAt defaults to LoggedAt.
	require.True(t, e.IngestedAt.Equal(e.LoggedAt))
}

func TestInMemoryStore_AppendKeepsExplicitIngestedAt(t *testing.T) {
	store := NewInMemoryStore()
	ingested := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	_, err := store.Append(LogEntry{Meal: "late dinner", PainLevel: 5, StressLevel: 4, IngestedAt: ingested})
	require.NoError(t, err)

	snap, err := store.Snapshot()
	require.NoError(t, err)
	e := snap.Entries()[0]
	require.True(t, e.IngestedAt.Equal(ingested))
	require.False(t, e.LoggedAt.Equal(e.IngestedAt))
}

func TestInMemoryStore_AppendRejectsMalformed(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Append(LogEntry{Meal: "coffee", PainLevel: 14})
	require.Error(t, err)

	snap, err := store.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 0, snap.Len())
}

func TestInMemoryStore_SnapshotIsIsolatedFromLaterAppends(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Append(LogEntry{Meal: "coffee", PainLevel: 3, StressLevel: 2})
	require.NoError(t, err)

	snap, err := store.Snapshot()
	require.NoError(t, err)

	_, err = store.Append(LogEntry{Meal: "lunch", PainLevel: 4, StressLevel: 2})
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len())
}
