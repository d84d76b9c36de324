package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBase returns the built-in knowledge base. The content mirrors
// common clinical guidance for each condition; it is heuristic data for
// ranking, not medical advice.
func DefaultBase() Base {
	return Base{
		Gastritis: {
			Name:           "Gastritis",
			Description:    "Inflammation of the stomach lining",
			CommonSymptoms: []string{"stomach_pain", "nausea", "vomiting", "bloating", "loss_of_appetite"},
			Triggers:       []string{"spicy_foods", "alcohol", "stress", "medications", "infections"},
			TypicalPattern: "Pain often occurs 30-60 minutes after eating",
			BaselinePain:   6,
			Candidates: []Candidate{
				{Remedy: "Antacid", Priority: 90, Note: "fast symptomatic relief"},
				{Remedy: "Ginger tea", Priority: 80, Note: "gentle on an irritated stomach"},
				{Remedy: "Small bland meal", Priority: 70},
				{Remedy: "Heat therapy", Priority: 60},
				{Remedy: "Deep breathing", Priority: 50},
				{Remedy: "Probiotics", Priority: 40, Note: "preventive, slow-acting"},
			},
		},
		GERD: {
			Name:           "Gastroesophageal Reflux Disease (GERD)",
			Description:    "Chronic acid reflux affecting the esophagus",
			CommonSymptoms: []string{"heartburn", "regurgitation", "chest_pain", "difficulty_swallowing", "chronic_cough"},
			Triggers:       []string{"large_meals", "lying_down_after_eating", "certain_foods", "obesity", "smoking"},
			TypicalPattern: "Symptoms worsen when lying down or bending over",
			BaselinePain:   5,
			Candidates: []Candidate{
				{Remedy: "Antacid", Priority: 90},
				{Remedy: "H2 blocker", Priority: 80},
				{Remedy: "Elevate head of bed", Priority: 70, Note: "for night-time reflux"},
				{Remedy: "Small frequent meals", Priority: 60},
				{Remedy: "Stay upright after eating", Priority: 50},
				{Remedy: "Chamomile tea", Priority: 40},
			},
		},
		IBS: {
			Name:           "Irritable Bowel Syndrome (IBS)",
			Description:    "Functional disorder affecting the large intestine",
			CommonSymptoms: []string{"abdominal_pain", "bloating", "diarrhea", "constipation", "gas"},
			Triggers:       []string{"stress", "certain_foods", "hormonal_changes", "gut_microbiome_imbalance"},
			TypicalPattern: "Symptoms often improve after bowel movements",
			BaselinePain:   5,
			Candidates: []Candidate{
				{Remedy: "Peppermint tea", Priority: 90, Note: "antispasmodic effect"},
				{Remedy: "Heat therapy", Priority: 80},
				{Remedy: "Stress management", Priority: 70},
				{Remedy: "Probiotics", Priority: 60},
				{Remedy: "Low-FODMAP meal", Priority: 50},
				{Remedy: "Gentle exercise", Priority: 40},
			},
		},
		Dyspepsia: {
			Name:           "Functional Dyspepsia",
			Description:    "Chronic indigestion without obvious cause",
			CommonSymptoms: []string{"upper_abdominal_pain", "early_satiety", "bloating", "nausea", "belching"},
			Triggers:       []string{"stress", "irregular_meals", "certain_foods", "smoking", "alcohol"},
			TypicalPattern: "Symptoms often occur during or after meals",
			BaselinePain:   4,
			Candidates: []Candidate{
				{Remedy: "Ginger tea", Priority: 90},
				{Remedy: "Small frequent meals", Priority: 80},
				{Remedy: "Antacid", Priority: 70},
				{Remedy: "Digestive enzymes", Priority: 60},
				{Remedy: "Deep breathing", Priority: 50},
			},
		},
		FoodSensitivity: {
			Name:           "Food Sensitivity/Intolerance",
			Description:    "Adverse reactions to specific foods",
			CommonSymptoms: []string{"bloating", "gas", "diarrhea", "stomach_pain", "nausea"},
			Triggers:       []string{"specific_foods", "food_additives", "lactose", "gluten", "fructose"},
			TypicalPattern: "Symptoms occur 2-6 hours after consuming trigger foods",
			BaselinePain:   4,
			Candidates: []Candidate{
				{Remedy: "Avoid identified trigger", Priority: 90},
				{Remedy: "Digestive enzymes", Priority: 80, Note: "e.g. lactase for lactose"},
				{Remedy: "Peppermint tea", Priority: 70},
				{Remedy: "Probiotics", Priority: 60},
				{Remedy: "Small bland meal", Priority: 50},
			},
		},
	}
}

// LoadBase reads a YAML knowledge base keyed by condition name. Conditions
// present in the file replace the built-in profile entirely; conditions
// absent from the file keep their built-in data.
func LoadBase(path string) (Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}
	var overlay map[string]ConditionProfile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}
	base := DefaultBase()
	for name, profile := range overlay {
		condition, err := ParseCondition(name)
		if err != nil {
			return nil, fmt.Errorf("knowledge base %s: %w", path, err)
		}
		base[condition] = profile
	}
	return base, nil
}
