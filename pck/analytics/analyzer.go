package analytics

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gutsight/gutsight/pck/entry_log"
	"github.com/gutsight/gutsight/pck/knowledge"
)

// Analyzer is a convenience facade binding a knowledge base and options
// to the free analysis functions, with a bounded memoization cache.
// Snapshots are immutable, so a (fingerprint, period, reference) triple
// fully determines a report; repeated calls for the same triple are
// served from cache.
//
// The free functions stay cache-unaware; wrap them with an Analyzer only
// when repeated identical reports are expected (e.g. a UI re-rendering).
type Analyzer struct {
	base  knowledge.Base
	opts  ReportOptions
	cache *lru.Cache[reportKey, ReportResult]
}

type reportKey struct {
	fingerprint uint64
	period      Period
	reference   int64
}

const reportCacheSize = 64

func NewAnalyzer(base knowledge.Base, opts ReportOptions) (*Analyzer, error) {
	if base == nil {
		base = knowledge.DefaultBase()
	}
	cache, err := lru.New[reportKey, ReportResult](reportCacheSize)
	if err != nil {
		return nil, err
	}
	return &Analyzer{base: base, opts: opts, cache: cache}, nil
}

// Report is the memoized equivalent of the package-level Report.
func (a *Analyzer) Report(snap entry_log.Snapshot, period Period, reference time.Time) ReportResult {
	key := reportKey{
		fingerprint: snap.Fingerprint(),
		period:      period,
		reference:   reference.UnixNano(),
	}
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}
	result := Report(snap, period, reference, a.opts)
	a.cache.Add(key, result)
	return result
}

// Suggest runs a report for the condition and feeds the remedy history
// into the ranker. The scorer's baseline comes from the condition's
// knowledge-base profile unless the options already set one.
func (a *Analyzer) Suggest(snap entry_log.Snapshot, period Period, condition knowledge.Condition,
	profile knowledge.Profile, painLevel, stressLevel int, at time.Time) ([]Suggestion, error) {

	opts := a.opts
	if opts.Effectiveness.BaselinePain <= 0 {
		opts.Effectiveness.BaselinePain = a.base.Baseline(condition)
	}
	window := SelectWindow(snap, period, at)
	history, err := Effectiveness(window, opts.Effectiveness)
	if err != nil {
		return nil, err
	}
	return Suggest(SuggestionContext{
		PainLevel:   painLevel,
		StressLevel: stressLevel,
		TimeOfDay:   at,
		Condition:   condition,
		Profile:     profile,
		History:     history,
		Base:        a.base,
	}, SuggestionOptions{})
}
