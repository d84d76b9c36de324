package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gutsight/gutsight/pck/entry_log"
)

func TestPeaks_ConcentratedHour(t *testing.T) {
	w := window(t, AllTime, at(4, 0),
		meal(at(1, 14), "lunch", 6),
		meal(at(2, 14), "lunch", 7),
		meal(at(3, 14), "lunch", 5),
	)
	report, err := Peaks(w)
	require.NoError(t, err)

	require.True(t, report.PeakPainDefined)
	require.Equal(t, 14, report.PeakPainHour)
	require.True(t, report.PeakStressDefined)
	require.Equal(t, 14, report.PeakStressHour)

	require.Equal(t, 3, report.HourlyPain[14].Count)
	require.InDelta(t, 6.0, report.HourlyPain[14].Mean, 1e-9)
}

func TestPeaks_EmptyWindowIsUndefinedNotHourZero(t *testing.T) {
	report, err := Peaks(Window{})
	require.NoError(t, err)
	require.False(t, report.PeakPainDefined)
	require.False(t, report.PeakStressDefined)
	for h := 0; h < 24; h++ {
		require.False(t, report.HourlyPain[h].Defined())
		require.False(t, report.HourlyStress[h].Defined())
	}
}

func TestPeaks_EmptyHoursAreUndefinedNotZero(t *testing.T) {
	w := window(t, AllTime, at(2, 0), meal(at(1, 9), "breakfast", 4))
	report, err := Peaks(w)
	require.NoError(t, err)

	require.True(t, report.HourlyPain[9].Defined())
	// Hour 10 has no data. Count zero distinguishes "no data" from a
	// genuine zero-pain mean.
	require.False(t, report.HourlyPain[10].Defined())
	require.Equal(t, 0, report.HourlyPain[10].Count)
}

func TestPeaks_TieBrokenByEarliestHour(t *testing.T) {
	w := window(t, AllTime, at(2, 0),
		meal(at(1, 7), "breakfast", 6),
		meal(at(1, 19), "dinner", 6),
	)
	report, err := Peaks(w)
	require.NoError(t, err)
	require.True(t, report.PeakPainDefined)
	require.Equal(t, 7, report.PeakPainHour)
}

func TestPeaks_PainAndStressPeakIndependently(t *testing.T) {
	w := window(t, AllTime, at(2, 0),
		mealStress(at(1, 8), "coffee", 7, 2),
		mealStress(at(1, 17), "commute snack", 2, 9),
	)
	report, err := Peaks(w)
	require.NoError(t, err)
	require.Equal(t, 8, report.PeakPainHour)
	require.Equal(t, 17, report.PeakStressHour)
}

func TestPeaks_HourComesFromIngestedAt(t *testing.T) {
	e := meal(at(1, 8), "breakfast", 5)
	e.LoggedAt = at(1, 22) // written up in the evening
	w := window(t, AllTime, at(2, 0), e)

	report, err := Peaks(w)
	require.NoError(t, err)
	require.Equal(t, 8, report.PeakPainHour)
	require.False(t, report.HourlyPain[22].Defined())
}

func TestPeaks_MalformedEntryFailsFast(t *testing.T) {
	bad := meal(at(1, 8), "coffee", 3)
	bad.StressLevel = -4
	_, err := Peaks(Window{Entries: []entry_log.LogEntry{bad}})
	require.Error(t, err)
}
