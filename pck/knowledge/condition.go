package knowledge

import (
	"fmt"
	"sort"
)

// Condition is one of the closed set of tracked GI conditions. Each
// condition carries its own static data (symptoms, triggers, remedy
// candidates, baseline pain); adding a condition is a data addition,
// not new branching logic in the engine.
type Condition string

const (
	Gastritis       Condition = "gastritis"
	GERD            Condition = "gerd"
	IBS             Condition = "ibs"
	Dyspepsia       Condition = "dyspepsia"
	FoodSensitivity Condition = "food_sensitivity"
)

// Conditions lists the supported set in a stable order.
func Conditions() []Condition {
	return []Condition{Gastritis, GERD, IBS, Dyspepsia, FoodSensitivity}
}

func ParseCondition(s string) (Condition, error) {
	for _, c := range Conditions() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// Candidate is a statically known remedy for a condition, with a priority
// used as the cold-start ranking when no personal history exists.
type Candidate struct {
	Remedy   string `yaml:"remedy"`
	Priority int    `yaml:"priority"`
	Note     string `yaml:"note,omitempty"`
}

// ConditionProfile is the static knowledge attached to one condition.
type ConditionProfile struct {
	Name           string      `yaml:"name"`
	Description    string      `yaml:"description"`
	CommonSymptoms []string    `yaml:"common_symptoms"`
	Triggers       []string    `yaml:"triggers"`
	TypicalPattern string      `yaml:"typical_pattern"`
	// BaselinePain is the condition's typical unrelieved pain level,
	// used by the effectiveness scorer when a remedy occurrence has no
	// prior no-remedy entry to compare against.
	BaselinePain int         `yaml:"baseline_pain"`
	Candidates   []Candidate `yaml:"candidates"`
}

// Base maps each supported condition to its static knowledge.
type Base map[Condition]ConditionProfile

// Candidates returns the condition's remedy pool ordered by descending
// priority, ties broken by remedy name. The returned slice is a copy.
func (b Base) Candidates(condition Condition) []Candidate {
	profile, ok := b[condition]
	if !ok {
		return nil
	}
	out := make([]Candidate, len(profile.Candidates))
	copy(out, profile.Candidates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Remedy < out[j].Remedy
	})
	return out
}

// Baseline returns the condition's typical unrelieved pain level, or
// DefaultBaselinePain for an unknown condition.
func (b Base) Baseline(condition Condition) int {
	if profile, ok := b[condition]; ok && profile.BaselinePain > 0 {
		return profile.BaselinePain
	}
	return DefaultBaselinePain
}

// DefaultBaselinePain is the fallback when a condition carries no
// baseline of its own.
const DefaultBaselinePain = 5
