package analytics

import (
	"sync"
	"time"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// ReportOptions bundles the per-analyzer tunables for a combined run.
type ReportOptions struct {
	Trigger       TriggerOptions
	Effectiveness EffectivenessOptions
}

// ReportResult holds the three analyses over one window. The analyzers
// are independent: a failure in one is captured in its error field and
// the others still complete.
type ReportResult struct {
	Window Window

	Triggers    []TriggerScore
	TriggersErr error

	Remedies    map[string]RemedyScore
	RemediesErr error

	Peaks    PeakReport
	PeaksErr error
}

// Report selects a window and runs the trigger, effectiveness and
// peak-time analyzers over it. The analyzers have no mutual data
// dependency and run concurrently; each is a pure function of the
// window.
func Report(snap entry_log.Snapshot, period Period, reference time.Time, opts ReportOptions) ReportResult {
	return AnalyzeWindow(SelectWindow(snap, period, reference), opts)
}

// AnalyzeWindow runs the three analyzers over an already selected
// window. Each analyzer's failure lands in its own error field; one
// failing never aborts the others.
func AnalyzeWindow(w Window, opts ReportOptions) ReportResult {
	result := ReportResult{Window: w}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Triggers, result.TriggersErr = Triggers(result.Window, opts.Trigger)
	}()
	go func() {
		defer wg.Done()
		result.Remedies, result.RemediesErr = Effectiveness(result.Window, opts.Effectiveness)
	}()
	go func() {
		defer wg.Done()
		result.Peaks, result.PeaksErr = Peaks(result.Window)
	}()
	wg.Wait()
	return result
}
