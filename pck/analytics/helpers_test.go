package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// day1 is the anchor all scenario times hang off.
var day1 = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return day1.AddDate(0, 0, day-1).Add(time.Duration(hour) * time.Hour)
}

func meal(ingested time.Time, name string, pain int) entry_log.LogEntry {
	return entry_log.LogEntry{
		ID:          uuid.New(),
		LoggedAt:    ingested,
		IngestedAt:  ingested,
		Meal:        name,
		PainLevel:   pain,
		StressLevel: 2,
	}
}

func mealStress(ingested time.Time, name string, pain, stress int) entry_log.LogEntry {
	e := meal(ingested, name, pain)
	e.StressLevel = stress
	return e
}

func withRemedy(e entry_log.LogEntry, remedy string) entry_log.LogEntry {
	e.Remedy = &remedy
	return e
}

func window(t *testing.T, period Period, reference time.Time, entries ...entry_log.LogEntry) Window {
	t.Helper()
	snap, err := entry_log.NewSnapshot(entries)
	require.NoError(t, err)
	return SelectWindow(snap, period, reference)
}
