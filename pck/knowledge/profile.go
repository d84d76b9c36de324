package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile carries the user constraints the suggestion ranker consults.
// Allergies and medications are exclusion/warning filters only; they
// never contribute positive score.
type Profile struct {
	Allergies   []string `yaml:"allergies"`
	Medications []string `yaml:"medications"`
}

// LoadProfile reads user constraints from a YAML file.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// Allergic reports whether the remedy matches any recorded allergy.
// Matching is case-insensitive and substring-based in both directions,
// so an allergy of "peppermint" excludes the "Peppermint tea" candidate.
func (p Profile) Allergic(remedy string) bool {
	return matchesAny(remedy, p.Allergies)
}

// Interacts reports whether the remedy matches a current medication,
// which flags (but does not exclude) the candidate for an interaction
// warning.
func (p Profile) Interacts(remedy string) bool {
	return matchesAny(remedy, p.Medications)
}

func matchesAny(remedy string, terms []string) bool {
	r := strings.ToLower(remedy)
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if strings.Contains(r, t) || strings.Contains(t, r) {
			return true
		}
	}
	return false
}
