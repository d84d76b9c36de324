package knowledge

import "time"

// DayPart is the coarse time-of-day band used for contextual remedy
// notes.
type DayPart string

const (
	Morning   DayPart = "morning"
	Afternoon DayPart = "afternoon"
	Evening   DayPart = "evening"
)

// DayPartOf maps an hour-of-day to its band: before 10:00 is morning,
// before 16:00 is afternoon, the rest is evening.
func DayPartOf(t time.Time) DayPart {
	switch {
	case t.Hour() < 10:
		return Morning
	case t.Hour() < 16:
		return Afternoon
	default:
		return Evening
	}
}

// DayPartNote returns a general care note for the band. Static data,
// not personalized.
func DayPartNote(part DayPart) string {
	switch part {
	case Morning:
		return "Mornings: prefer a small, bland breakfast and gentle remedies such as ginger tea"
	case Afternoon:
		return "Afternoons: light, frequent meals and a short walk after eating help"
	default:
		return "Evenings: avoid large or late meals; for reflux, stay upright after eating"
	}
}

// StressNote is attached when current stress is high; stress management
// outranks diet adjustments in that state.
const StressNote = "High stress amplifies GI symptoms: prioritize stress management (breathing, gentle exercise)"
