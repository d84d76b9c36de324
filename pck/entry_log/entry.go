package entry_log

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EntryID = uuid.UUID

// LogEntry represents a single immutable journal record: what was eaten,
// how it felt, and (optionally) what was done about it.
// Once added to a store, a LogEntry MUST NOT be modified.
//
// Two timestamps are carried on purpose:
//   - LoggedAt is when the record was written.
//   - IngestedAt is when the meal was actually consumed. It defaults to
//     LoggedAt but may precede it arbitrarily (retroactive backfill is legal).
//
// All analysis orders and windows by IngestedAt, never by LoggedAt.
type LogEntry struct {
	ID          EntryID           `json:"id"`
	LoggedAt    time.Time         `json:"logged_at"`
	IngestedAt  time.Time         `json:"ingested_at"`
	Meal        string            `json:"meal"`
	PainLevel   int               `json:"pain_level"`
	StressLevel int               `json:"stress_level"`
	// Remedy is nil when no remedy was used. A nil Remedy is a distinct,
	// valid state and is never represented by a "none" string.
	Remedy  *string           `json:"remedy,omitempty"`
	Context map[string]string `json:"context,omitempty"`
}

// HasRemedy reports whether a remedy was applied with this entry.
func (e LogEntry) HasRemedy() bool {
	return e.Remedy != nil && *e.Remedy != ""
}

const (
	MinLevel = 0
	MaxLevel = 10
)

// ValidationError identifies the offending entry. Malformed entries are
// never clamped or silently dropped: doing so would corrupt trend analysis
// invisibly.
type ValidationError struct {
	Index int // position within the inspected sequence, -1 when unknown
	ID    EntryID
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid entry %s at index %d: %s %s", e.ID, e.Index, e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid entry %s: %s %s", e.ID, e.Field, e.Msg)
}

// Validate checks a single entry against the ingestion contract.
// Retroactive IngestedAt is NOT an error; only structurally broken
// records fail.
func Validate(e LogEntry) error {
	return validateAt(e, -1)
}

func validateAt(e LogEntry, index int) error {
	if e.LoggedAt.IsZero() {
		return &ValidationError{Index: index, ID: e.ID, Field: "logged_at", Msg: "is zero"}
	}
	if e.IngestedAt.IsZero() {
		return &ValidationError{Index: index, ID: e.ID, Field: "ingested_at", Msg: "is zero"}
	}
	if e.Meal == "" {
		return &ValidationError{Index: index, ID: e.ID, Field: "meal", Msg: "is empty"}
	}
	if e.PainLevel < MinLevel || e.PainLevel > MaxLevel {
		return &ValidationError{Index: index, ID: e.ID, Field: "pain_level",
			Msg: fmt.Sprintf("%d out of range [%d,%d]", e.PainLevel, MinLevel, MaxLevel)}
	}
	if e.StressLevel < MinLevel || e.StressLevel > MaxLevel {
		return &ValidationError{Index: index, ID: e.ID, Field: "stress_level",
			Msg: fmt.Sprintf("%d out of range [%d,%d]", e.StressLevel, MinLevel, MaxLevel)}
	}
	return nil
}

// ValidateAll validates an ordered sequence, failing fast on the first
// malformed entry.
func ValidateAll(entries []LogEntry) error {
	for i, e := range entries {
		if err := validateAt(e, i); err != nil {
			return err
		}
	}
	return nil
}
