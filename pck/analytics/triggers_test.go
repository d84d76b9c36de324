package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gutsight/gutsight/pck/entry_log"
)

func TestTriggers_RanksByMeanPain(t *testing.T) {
	w := window(t, AllTime, at(3, 0),
		meal(at(1, 8), "coffee", 7),
		meal(at(1, 8).Add(time.Minute), "coffee", 6),
		meal(at(2, 8), "oatmeal", 2),
	)

	scores, err := Triggers(w, TriggerOptions{})
	require.NoError(t, err)
	require.Len(t, scores, 2)

	require.Equal(t, "coffee", scores[0].Meal)
	require.InDelta(t, 6.5, scores[0].MeanPain, 1e-9)
	require.Equal(t, 2, scores[0].Occurrences)
	require.False(t, scores[0].LowConfidence)

	require.Equal(t, "oatmeal", scores[1].Meal)
	require.InDelta(t, 2.0, scores[1].MeanPain, 1e-9)
	require.Equal(t, 1, scores[1].Occurrences)
	require.True(t, scores[1].LowConfidence)
}

func TestTriggers_StableUnderInputReordering(t *testing.T) {
	entries := []entry_log.LogEntry{
		meal(at(1, 8), "coffee", 5),
		meal(at(1, 12), "fried rice", 5),
		meal(at(1, 18), "fried rice", 5),
		meal(at(2, 8), "coffee", 5),
		meal(at(2, 12), "apple", 5),
	}

	first := triggersOf(t, entries)
	// Reverse the input; the ranking must not move.
	reversed := make([]entry_log.LogEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	second := triggersOf(t, reversed)
	require.Equal(t, first, second)

	// Equal mean and count falls back to descriptor name.
	require.Equal(t, "coffee", first[0].Meal)
	require.Equal(t, "fried rice", first[1].Meal)
	require.Equal(t, "apple", first[2].Meal)
}

func triggersOf(t *testing.T, entries []entry_log.LogEntry) []TriggerScore {
	t.Helper()
	scores, err := Triggers(window(t, AllTime, at(9, 0), entries...), TriggerOptions{})
	require.NoError(t, err)
	return scores
}

func TestTriggers_Idempotent(t *testing.T) {
	w := window(t, AllTime, at(9, 0),
		meal(at(1, 8), "coffee", 7),
		meal(at(2, 8), "coffee", 4),
		meal(at(2, 12), "salad", 1),
	)
	first, err := Triggers(w, TriggerOptions{})
	require.NoError(t, err)
	second, err := Triggers(w, TriggerOptions{})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTriggers_LookbackSkipsStaleAttribution(t *testing.T) {
	fresh := meal(at(2, 8), "toast", 4)
	// Eaten on day 1 but only written up two days later: the attached
	// reading no longer describes the meal's aftermath.
	stale := meal(at(1, 8), "mystery stew", 9)
	stale.LoggedAt = at(3, 8)

	w := window(t, AllTime, at(4, 0), fresh, stale)
	scores, err := Triggers(w, TriggerOptions{})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "toast", scores[0].Meal)
}

func TestTriggers_EmptyWindowYieldsNoScores(t *testing.T) {
	scores, err := Triggers(Window{}, TriggerOptions{})
	require.NoError(t, err)
	require.Empty(t, scores)
}

func TestTriggers_MalformedEntryFailsFast(t *testing.T) {
	bad := meal(at(1, 8), "coffee", 3)
	bad.PainLevel = 99
	_, err := Triggers(Window{Entries: []entry_log.LogEntry{bad}}, TriggerOptions{})
	require.Error(t, err)
	var verr *entry_log.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, 0, verr.Index)
}
