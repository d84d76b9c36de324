package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gutsight/gutsight/pck/analytics"
	"github.com/gutsight/gutsight/pck/entry_log"
	"github.com/gutsight/gutsight/pck/knowledge"
)

var (
	logPath     string
	kbPath      string
	profilePath string
	periodName  string
	condName    string
)

func main() {
	root := &cobra.Command{
		Use:   "gutsight",
		Short: "Analytics over a personal GI symptom log",
		Long: "gutsight reads an append-only meal/pain/remedy log and derives insight:\n" +
			"trigger foods, remedy effectiveness, peak symptom hours and ranked\n" +
			"remedy suggestions. It is a tracking aid, not a medical device.",
	}
	root.PersistentFlags().StringVar(&logPath, "log", "entries.jsonl", "path to the JSONL entry log")
	root.PersistentFlags().StringVar(&kbPath, "kb", "", "optional YAML knowledge-base overlay")
	root.PersistentFlags().StringVar(&profilePath, "profile", "", "optional YAML user profile (allergies, medications)")
	root.PersistentFlags().StringVar(&periodName, "period", string(analytics.Weekly), "analysis window: daily, weekly, monthly or all_time")
	root.PersistentFlags().StringVar(&condName, "condition", string(knowledge.Gastritis), "tracked condition")

	root.AddCommand(newLogCmd(), newReportCmd(), newSuggestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogCmd() *cobra.Command {
	var (
		mealName    string
		pain        int
		stress      int
		remedy      string
		ingestedStr string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append one entry to the log",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := entry_log.LogEntry{
				Meal:        mealName,
				PainLevel:   pain,
				StressLevel: stress,
			}
			if remedy != "" {
				entry.Remedy = &remedy
			}
			if ingestedStr != "" {
				ingested, err := time.Parse(time.RFC3339, ingestedStr)
				if err != nil {
					return fmt.Errorf("parse --ingested: %w", err)
				}
				entry.IngestedAt = ingested
			}
			store := entry_log.NewJSONLStore(logPath)
			id, err := store.Append(entry)
			if err != nil {
				return err
			}
			fmt.Printf("logged %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&mealName, "meal", "", "what was eaten")
	cmd.Flags().IntVar(&pain, "pain", 0, "pain level 0-10")
	cmd.Flags().IntVar(&stress, "stress", 0, "stress level 0-10")
	cmd.Flags().StringVar(&remedy, "remedy", "", "remedy applied, if any")
	cmd.Flags().StringVar(&ingestedStr, "ingested", "", "when the meal was eaten (RFC 3339), defaults to now")
	_ = cmd.MarkFlagRequired("meal")
	return cmd
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run trigger, effectiveness and peak-time analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, period, base, _, err := loadInputs()
			if err != nil {
				return err
			}
			condition, err := knowledge.ParseCondition(condName)
			if err != nil {
				return err
			}
			opts := analytics.ReportOptions{}
			opts.Effectiveness.BaselinePain = base.Baseline(condition)
			result := analytics.Report(snap, period, time.Now(), opts)
			printReport(result)
			return nil
		},
	}
}

func newSuggestCmd() *cobra.Command {
	var (
		pain   int
		stress int
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank remedy suggestions for the current situation",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, period, base, profile, err := loadInputs()
			if err != nil {
				return err
			}
			condition, err := knowledge.ParseCondition(condName)
			if err != nil {
				return err
			}
			analyzer, err := analytics.NewAnalyzer(base, analytics.ReportOptions{})
			if err != nil {
				return err
			}
			suggestions, err := analyzer.Suggest(snap, period, condition, profile, pain, stress, time.Now())
			if err != nil {
				return err
			}
			printSuggestions(suggestions)
			return nil
		},
	}
	cmd.Flags().IntVar(&pain, "pain", 0, "current pain level 0-10")
	cmd.Flags().IntVar(&stress, "stress", 0, "current stress level 0-10")
	return cmd
}

func loadInputs() (entry_log.Snapshot, analytics.Period, knowledge.Base, knowledge.Profile, error) {
	period, err := analytics.ParsePeriod(periodName)
	if err != nil {
		return entry_log.Snapshot{}, "", nil, knowledge.Profile{}, err
	}

	store := entry_log.NewJSONLStore(logPath)
	snap, err := store.Snapshot()
	if err != nil {
		return entry_log.Snapshot{}, "", nil, knowledge.Profile{}, err
	}

	base := knowledge.DefaultBase()
	if kbPath != "" {
		base, err = knowledge.LoadBase(kbPath)
		if err != nil {
			return entry_log.Snapshot{}, "", nil, knowledge.Profile{}, err
		}
	}

	var profile knowledge.Profile
	if profilePath != "" {
		profile, err = knowledge.LoadProfile(profilePath)
		if err != nil {
			return entry_log.Snapshot{}, "", nil, knowledge.Profile{}, err
		}
	}
	return snap, period, base, profile, nil
}

func printReport(result analytics.ReportResult) {
	fmt.Printf("window: %s, %d entries\n\n", result.Window.Period, len(result.Window.Entries))

	fmt.Println("trigger foods (mean pain, occurrences):")
	if result.TriggersErr != nil {
		fmt.Println("  analysis failed:", result.TriggersErr)
	} else if len(result.Triggers) == 0 {
		fmt.Println("  not enough data yet")
	}
	for _, s := range result.Triggers {
		flag := ""
		if s.LowConfidence {
			flag = " (low confidence)"
		}
		fmt.Printf("  %-24s %.1f over %d%s\n", s.Meal, s.MeanPain, s.Occurrences, flag)
	}

	fmt.Println("\nremedy effectiveness (relief, uses, confidence):")
	if result.RemediesErr != nil {
		fmt.Println("  analysis failed:", result.RemediesErr)
	} else if len(result.Remedies) == 0 {
		fmt.Println("  not enough data yet")
	}
	names := make([]string, 0, len(result.Remedies))
	for name := range result.Remedies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := result.Remedies[name]
		fmt.Printf("  %-24s %+.1f over %d (%s)\n", s.Remedy, s.Effectiveness, s.SampleSize, s.Confidence)
	}

	fmt.Println("\npeak hours:")
	if result.PeaksErr != nil {
		fmt.Println("  analysis failed:", result.PeaksErr)
	} else {
		if result.Peaks.PeakPainDefined {
			fmt.Printf("  pain peaks at %02d:00\n", result.Peaks.PeakPainHour)
		} else {
			fmt.Println("  pain peak: not enough data yet")
		}
		if result.Peaks.PeakStressDefined {
			fmt.Printf("  stress peaks at %02d:00\n", result.Peaks.PeakStressHour)
		} else {
			fmt.Println("  stress peak: not enough data yet")
		}
	}
}

func printSuggestions(suggestions []analytics.Suggestion) {
	for _, s := range suggestions {
		switch s.Kind {
		case analytics.KindAdvisory:
			fmt.Printf("!! %s\n", s.Remedy)
		case analytics.KindRemedy:
			marker := "  "
			if s.Interaction {
				marker = " *"
			}
			fmt.Printf("%s %-24s %s\n", marker, s.Remedy, s.Rationale)
		case analytics.KindNote:
			fmt.Printf("   note: %s\n", s.Rationale)
		}
	}
}
