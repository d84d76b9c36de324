package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/gutsight/gutsight/pck/entry_log"
	"github.com/gutsight/gutsight/pck/knowledge"
)

// SuggestionKind distinguishes ranked remedies from safety advisories
// and contextual notes.
type SuggestionKind string

const (
	// KindAdvisory is a safety override, not a ranked suggestion. When
	// present it is always the first element.
	KindAdvisory SuggestionKind = "advisory"
	KindRemedy   SuggestionKind = "remedy"
	KindNote     SuggestionKind = "note"
)

// Suggestion is one ranked remedy candidate with an explainable
// rationale.
type Suggestion struct {
	Kind   SuggestionKind
	Remedy string
	Score  float64
	// Interaction flags a candidate matching a current medication. The
	// candidate stays ranked; the flag is a warning, not an exclusion.
	Interaction bool
	Rationale   string
}

// MedicalAdvisory is the emergency override text.
const MedicalAdvisory = "Seek medical attention: current pain is at an emergency level"

// SuggestionContext is everything the ranker consumes. History is the
// effectiveness scorer's output for the user's own log; Base supplies
// the condition's static candidate pool.
type SuggestionContext struct {
	PainLevel   int
	StressLevel int
	TimeOfDay   time.Time
	Condition   knowledge.Condition
	Profile     knowledge.Profile
	History     map[string]RemedyScore
	Base        knowledge.Base
}

// SuggestionOptions tunes ranking.
type SuggestionOptions struct {
	// EmergencyPain at or above which the medical advisory is prepended.
	// Default 8.
	EmergencyPain int
	// HighStress at or above which the stress note is appended. Default 7.
	HighStress int
	// TierWeight blends history against the static pool: a remedy with
	// high-confidence history is ranked almost entirely by that history,
	// low-confidence history mostly by pool priority.
	TierWeight map[Tier]float64
}

func DefaultSuggestionOptions() SuggestionOptions {
	return SuggestionOptions{
		EmergencyPain: 8,
		HighStress:    7,
		TierWeight: map[Tier]float64{
			TierHigh:   1.0,
			TierMedium: 0.6,
			TierLow:    0.3,
		},
	}
}

func (o SuggestionOptions) withDefaults() SuggestionOptions {
	def := DefaultSuggestionOptions()
	if o.EmergencyPain <= 0 {
		o.EmergencyPain = def.EmergencyPain
	}
	if o.HighStress <= 0 {
		o.HighStress = def.HighStress
	}
	if o.TierWeight == nil {
		o.TierWeight = def.TierWeight
	}
	return o
}

// Suggest produces a deterministic, explainable remedy ranking:
//
//  1. start from the condition's static candidate pool,
//  2. drop candidates matching a profile allergy,
//  3. flag candidates matching a current medication,
//  4. blend personal effectiveness (weighted by its confidence tier)
//     with normalized pool priority,
//  5. prepend the medical advisory when pain is at the emergency level.
//
// Identical inputs always produce identical output.
func Suggest(ctx SuggestionContext, opts SuggestionOptions) ([]Suggestion, error) {
	if ctx.PainLevel < entry_log.MinLevel || ctx.PainLevel > entry_log.MaxLevel {
		return nil, &entry_log.ValidationError{Index: -1, Field: "pain_level",
			Msg: fmt.Sprintf("%d out of range [%d,%d]", ctx.PainLevel, entry_log.MinLevel, entry_log.MaxLevel)}
	}
	if ctx.StressLevel < entry_log.MinLevel || ctx.StressLevel > entry_log.MaxLevel {
		return nil, &entry_log.ValidationError{Index: -1, Field: "stress_level",
			Msg: fmt.Sprintf("%d out of range [%d,%d]", ctx.StressLevel, entry_log.MinLevel, entry_log.MaxLevel)}
	}
	opts = opts.withDefaults()

	base := ctx.Base
	if base == nil {
		base = knowledge.DefaultBase()
	}
	pool := base.Candidates(ctx.Condition)

	maxPriority := 1
	for _, c := range pool {
		if c.Priority > maxPriority {
			maxPriority = c.Priority
		}
	}

	type ranked struct {
		Suggestion
		priority int
	}
	candidates := make([]ranked, 0, len(pool))
	for _, c := range pool {
		if ctx.Profile.Allergic(c.Remedy) {
			continue
		}
		// Static priority occupies [0, 0.5]: the neutral-effect line.
		// Confirmed positive history scores above it, confirmed negative
		// history below it, so a remedy with no history never outranks
		// one that demonstrably works.
		priorityScore := 0.5 * float64(c.Priority) / float64(maxPriority)
		score := priorityScore
		rationale := fmt.Sprintf("no personal history yet; ranked by %s guidance", ctx.Condition)

		if history, ok := ctx.History[c.Remedy]; ok && history.SampleSize > 0 {
			tw := opts.TierWeight[history.Confidence]
			// Relief spans [-10,10]; map it onto [0,1] with 0.5 neutral.
			effScore := 0.5 * (1 + history.Effectiveness/float64(entry_log.MaxLevel))
			if effScore < 0 {
				effScore = 0
			} else if effScore > 1 {
				effScore = 1
			}
			score = tw*effScore + (1-tw)*priorityScore
			rationale = fmt.Sprintf("relieved on average %.1f pain points over %d uses (%s confidence)",
				history.Effectiveness, history.SampleSize, history.Confidence)
		}

		s := Suggestion{
			Kind:        KindRemedy,
			Remedy:      c.Remedy,
			Score:       score,
			Interaction: ctx.Profile.Interacts(c.Remedy),
			Rationale:   rationale,
		}
		if s.Interaction {
			s.Rationale += "; matches a current medication, check for interactions"
		}
		candidates = append(candidates, ranked{Suggestion: s, priority: c.Priority})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority > candidates[j].priority
		}
		return candidates[i].Remedy < candidates[j].Remedy
	})

	var out []Suggestion
	if ctx.PainLevel >= opts.EmergencyPain {
		out = append(out, Suggestion{
			Kind:      KindAdvisory,
			Rationale: fmt.Sprintf("pain level %d is at or above the emergency threshold %d", ctx.PainLevel, opts.EmergencyPain),
			Remedy:    MedicalAdvisory,
		})
	}
	for _, c := range candidates {
		out = append(out, c.Suggestion)
	}

	if !ctx.TimeOfDay.IsZero() {
		out = append(out, Suggestion{
			Kind:      KindNote,
			Rationale: knowledge.DayPartNote(knowledge.DayPartOf(ctx.TimeOfDay)),
		})
	}
	if ctx.StressLevel >= opts.HighStress {
		out = append(out, Suggestion{
			Kind:      KindNote,
			Rationale: knowledge.StressNote,
		})
	}
	return out, nil
}
