package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// Tier is the qualitative confidence attached to an effectiveness
// estimate. Tiers are ordered and monotonic in sample size and
// consistency: more occurrences with a steadier direction of effect
// never lowers the tier.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// EffectivenessOptions tunes remedy scoring.
type EffectivenessOptions struct {
	// BaselinePain is used when a remedy occurrence has no prior
	// no-remedy entry in the window to compare against. Callers pass
	// the condition's typical baseline from the knowledge base.
	BaselinePain int
	// HalfLifeDays controls recency weighting: an occurrence this many
	// days before the window end counts half as much as one at the end.
	// Default 30.
	HalfLifeDays float64
	// Tier thresholds. The three-tier shape is fixed; only the cut
	// points are tunable.
	HighSampleSize   int     // default 5
	MediumSampleSize int     // default 3
	HighConsistency  float64 // default 0.8
}

func DefaultEffectivenessOptions() EffectivenessOptions {
	return EffectivenessOptions{
		BaselinePain:     5,
		HalfLifeDays:     30,
		HighSampleSize:   5,
		MediumSampleSize: 3,
		HighConsistency:  0.8,
	}
}

func (o EffectivenessOptions) withDefaults() EffectivenessOptions {
	def := DefaultEffectivenessOptions()
	if o.BaselinePain <= 0 {
		o.BaselinePain = def.BaselinePain
	}
	if o.HalfLifeDays <= 0 {
		o.HalfLifeDays = def.HalfLifeDays
	}
	if o.HighSampleSize <= 0 {
		o.HighSampleSize = def.HighSampleSize
	}
	if o.MediumSampleSize <= 0 {
		o.MediumSampleSize = def.MediumSampleSize
	}
	if o.HighConsistency <= 0 {
		o.HighConsistency = def.HighConsistency
	}
	return o
}

// RemedyScore summarizes how well one remedy has worked.
type RemedyScore struct {
	Remedy string
	// Effectiveness is the time-weighted mean relief magnitude: baseline
	// pain minus pain at use. Positive means the remedy helps.
	Effectiveness float64
	Confidence    Tier
	SampleSize    int
	// Consistency is the fraction of occurrences sharing the dominant
	// direction of effect.
	Consistency float64
}

// Effectiveness scores every remedy that occurs in the window. The
// baseline for each occurrence is the pain level of the nearest prior
// entry without a remedy, falling back to opts.BaselinePain when the
// occurrence has no such predecessor. Remedies with zero occurrences are
// omitted, never reported as zero-confidence placeholders.
func Effectiveness(w Window, opts EffectivenessOptions) (map[string]RemedyScore, error) {
	if err := entry_log.ValidateAll(w.Entries); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	type occurrence struct {
		relief float64
		weight float64
	}
	byRemedy := make(map[string][]occurrence)

	priorBaseline := -1
	for _, e := range w.Entries {
		if !e.HasRemedy() {
			priorBaseline = e.PainLevel
			continue
		}
		baseline := opts.BaselinePain
		if priorBaseline >= 0 {
			baseline = priorBaseline
		}
		ageDays := w.To.Sub(e.IngestedAt).Hours() / 24
		if ageDays < 0 {
			ageDays = 0
		}
		byRemedy[*e.Remedy] = append(byRemedy[*e.Remedy], occurrence{
			relief: float64(baseline - e.PainLevel),
			weight: math.Pow(0.5, ageDays/opts.HalfLifeDays),
		})
	}

	scores := make(map[string]RemedyScore, len(byRemedy))
	for remedy, occurrences := range byRemedy {
		reliefs := make([]float64, len(occurrences))
		weights := make([]float64, len(occurrences))
		positive := 0
		for i, o := range occurrences {
			reliefs[i] = o.relief
			weights[i] = o.weight
			if o.relief > 0 {
				positive++
			}
		}
		n := len(occurrences)
		consistency := float64(positive) / float64(n)
		if c := 1 - consistency; c > consistency {
			consistency = c
		}
		scores[remedy] = RemedyScore{
			Remedy:        remedy,
			Effectiveness: stat.Mean(reliefs, weights),
			Confidence:    tierFor(n, consistency, opts),
			SampleSize:    n,
			Consistency:   consistency,
		}
	}
	return scores, nil
}

func tierFor(sampleSize int, consistency float64, opts EffectivenessOptions) Tier {
	switch {
	case sampleSize >= opts.HighSampleSize && consistency >= opts.HighConsistency:
		return TierHigh
	case sampleSize >= opts.MediumSampleSize:
		return TierMedium
	default:
		return TierLow
	}
}
