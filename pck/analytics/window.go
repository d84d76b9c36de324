package analytics

import (
	"fmt"
	"time"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// Period selects the lookback span of an analysis window, measured
// backward from a reference time.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	AllTime Period = "all_time"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly, Monthly, AllTime:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Lookback returns the period's span. ok is false for AllTime, which is
// unbounded.
func (p Period) Lookback() (span time.Duration, ok bool) {
	switch p {
	case Daily:
		return 24 * time.Hour, true
	case Weekly:
		return 7 * 24 * time.Hour, true
	case Monthly:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Window is a bounded, ordered subset of a snapshot: the entries whose
// IngestedAt falls within the period before the reference time, ascending
// by IngestedAt. An empty window is valid and propagates downstream as
// "insufficient data".
type Window struct {
	Entries []entry_log.LogEntry
	Period  Period
	// From is the inclusive lower bound; zero for AllTime.
	From time.Time
	// To is the reference time the window was selected at. Entries
	// ingested after To are passed through, not filtered: a future-dated
	// ingestion is the logger's business, not the engine's.
	To time.Time
}

// SelectWindow filters a snapshot into a window. A reference time before
// all entries yields an empty window, never an error.
func SelectWindow(snap entry_log.Snapshot, period Period, reference time.Time) Window {
	w := Window{Period: period, To: reference}
	span, bounded := period.Lookback()
	if bounded {
		w.From = reference.Add(-span)
	}
	for _, e := range snap.Entries() {
		if bounded && e.IngestedAt.Before(w.From) {
			continue
		}
		w.Entries = append(w.Entries, e)
	}
	return w
}

func (w Window) Empty() bool {
	return len(w.Entries) == 0
}
