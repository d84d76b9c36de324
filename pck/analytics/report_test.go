package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gutsight/gutsight/pck/entry_log"
)

func reportSnapshot(t *testing.T) entry_log.Snapshot {
	t.Helper()
	snap, err := entry_log.NewSnapshot([]entry_log.LogEntry{
		meal(at(1, 8), "coffee", 7),
		meal(at(2, 8), "coffee", 6),
		withRemedy(meal(at(2, 10), "water", 3), "antacid"),
		meal(at(3, 12), "oatmeal", 2),
	})
	require.NoError(t, err)
	return snap
}

func TestReport_AllAnalyzersComplete(t *testing.T) {
	result := Report(reportSnapshot(t), AllTime, at(4, 0), ReportOptions{})

	require.NoError(t, result.TriggersErr)
	require.NoError(t, result.RemediesErr)
	require.NoError(t, result.PeaksErr)

	require.NotEmpty(t, result.Triggers)
	require.Equal(t, "coffee", result.Triggers[0].Meal)
	require.Contains(t, result.Remedies, "antacid")
	require.True(t, result.Peaks.PeakPainDefined)
}

func TestReport_EmptySnapshotIsInsufficientDataNotError(t *testing.T) {
	snap, err := entry_log.NewSnapshot(nil)
	require.NoError(t, err)

	result := Report(snap, Weekly, at(1, 0), ReportOptions{})
	require.NoError(t, result.TriggersErr)
	require.NoError(t, result.RemediesErr)
	require.NoError(t, result.PeaksErr)
	require.Empty(t, result.Triggers)
	require.Empty(t, result.Remedies)
	require.False(t, result.Peaks.PeakPainDefined)
}

func TestAnalyzeWindow_FailuresAreIsolatedPerAnalyzer(t *testing.T) {
	bad := meal(at(1, 8), "coffee", 3)
	bad.PainLevel = 99
	w := Window{Entries: []entry_log.LogEntry{bad}}

	result := AnalyzeWindow(w, ReportOptions{})

	// Every analyzer reports its own failure; none panics, none blocks
	// the others from finishing.
	require.Error(t, result.TriggersErr)
	require.Error(t, result.RemediesErr)
	require.Error(t, result.PeaksErr)

	var verr *entry_log.ValidationError
	require.ErrorAs(t, result.TriggersErr, &verr)
	require.Equal(t, bad.ID, verr.ID)
}

func TestReport_WindowNarrowsWithPeriod(t *testing.T) {
	snap := reportSnapshot(t)

	all := Report(snap, AllTime, at(3, 13), ReportOptions{})
	daily := Report(snap, Daily, at(3, 13), ReportOptions{})
	require.Greater(t, len(all.Window.Entries), len(daily.Window.Entries))
}
