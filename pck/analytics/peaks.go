package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gutsight/gutsight/pck/entry_log"
)

// HourStat is one hour-of-day bucket. An hour with Count zero has no
// data; its Mean is meaningless and must not be read as "symptom-free".
type HourStat struct {
	Mean  float64
	Count int
}

func (h HourStat) Defined() bool {
	return h.Count > 0
}

// PeakReport buckets a window's entries into 24 hour-of-day buckets by
// the hour component of IngestedAt, in whatever local time the caller
// supplied. The engine performs no timezone conversion.
type PeakReport struct {
	HourlyPain   [24]HourStat
	HourlyStress [24]HourStat
	// Peak hours are the highest defined hourly mean, ties broken by
	// the earliest hour. When no hour is defined the flag is false and
	// the hour value carries no meaning (it is NOT hour 0).
	PeakPainHour      int
	PeakPainDefined   bool
	PeakStressHour    int
	PeakStressDefined bool
}

// Peaks computes hourly pain and stress means and their peak hours.
// An empty window yields a report with every bucket undefined.
func Peaks(w Window) (PeakReport, error) {
	if err := entry_log.ValidateAll(w.Entries); err != nil {
		return PeakReport{}, err
	}

	var pain, stress [24][]float64
	for _, e := range w.Entries {
		h := e.IngestedAt.Hour()
		pain[h] = append(pain[h], float64(e.PainLevel))
		stress[h] = append(stress[h], float64(e.StressLevel))
	}

	var report PeakReport
	for h := 0; h < 24; h++ {
		if len(pain[h]) > 0 {
			report.HourlyPain[h] = HourStat{Mean: stat.Mean(pain[h], nil), Count: len(pain[h])}
		}
		if len(stress[h]) > 0 {
			report.HourlyStress[h] = HourStat{Mean: stat.Mean(stress[h], nil), Count: len(stress[h])}
		}
	}
	report.PeakPainHour, report.PeakPainDefined = peakHour(report.HourlyPain)
	report.PeakStressHour, report.PeakStressDefined = peakHour(report.HourlyStress)
	return report, nil
}

func peakHour(hours [24]HourStat) (int, bool) {
	peak, found := 0, false
	for h := 0; h < 24; h++ {
		if !hours[h].Defined() {
			continue
		}
		if !found || hours[h].Mean > hours[peak].Mean {
			peak, found = h, true
		}
	}
	return peak, found
}
