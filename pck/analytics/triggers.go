package analytics

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// TriggerOptions tunes trigger-food detection.
type TriggerOptions struct {
	// Lookback bounds how long after ingestion a pain reading may still
	// be attributed to the meal. A backfilled entry whose reading was
	// logged later than this is skipped: the association is too stale.
	// Default 6h, matching the typical 2-6h trigger-food onset.
	Lookback time.Duration
	// MinOccurrences below which a descriptor is still reported but
	// flagged low-confidence. Default 2.
	MinOccurrences int
}

func DefaultTriggerOptions() TriggerOptions {
	return TriggerOptions{
		Lookback:       6 * time.Hour,
		MinOccurrences: 2,
	}
}

func (o TriggerOptions) withDefaults() TriggerOptions {
	def := DefaultTriggerOptions()
	if o.Lookback <= 0 {
		o.Lookback = def.Lookback
	}
	if o.MinOccurrences <= 0 {
		o.MinOccurrences = def.MinOccurrences
	}
	return o
}

// TriggerScore associates a meal descriptor with the mean pain observed
// across its occurrences.
type TriggerScore struct {
	Meal        string
	MeanPain    float64
	Occurrences int
	// LowConfidence marks descriptors seen fewer than MinOccurrences
	// times. They are reported, not dropped.
	LowConfidence bool
}

// Triggers ranks meal descriptors by association with elevated pain.
// Ranking is mean pain descending, then occurrence count descending,
// then descriptor name ascending, so it is stable under input
// reordering and idempotent across calls.
func Triggers(w Window, opts TriggerOptions) ([]TriggerScore, error) {
	if err := entry_log.ValidateAll(w.Entries); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	pains := make(map[string][]float64)
	for _, e := range w.Entries {
		// The reading attached to the entry is the attribution. The gap
		// between ingestion and the reading being logged must fit the
		// lookback; same-time entries always do.
		if e.LoggedAt.Sub(e.IngestedAt) > opts.Lookback {
			continue
		}
		pains[e.Meal] = append(pains[e.Meal], float64(e.PainLevel))
	}

	scores := make([]TriggerScore, 0, len(pains))
	for meal, values := range pains {
		scores = append(scores, TriggerScore{
			Meal:          meal,
			MeanPain:      stat.Mean(values, nil),
			Occurrences:   len(values),
			LowConfidence: len(values) < opts.MinOccurrences,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].MeanPain != scores[j].MeanPain {
			return scores[i].MeanPain > scores[j].MeanPain
		}
		if scores[i].Occurrences != scores[j].Occurrences {
			return scores[i].Occurrences > scores[j].Occurrences
		}
		return scores[i].Meal < scores[j].Meal
	})
	return scores, nil
}
