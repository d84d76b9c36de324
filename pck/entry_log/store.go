package entry_log

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EntryStore is the adapter the engine consumes. Implementations own
// persistence; the engine only ever reads a materialized snapshot and
// never mutates or deletes entries.
type EntryStore interface {
	// Snapshot materializes an immutable, ordered view of all entries.
	Snapshot() (Snapshot, error)
}

// Appender is the write side used by logging and backfill workflows.
// The analytics engine does not use it.
type Appender interface {
	// Append validates and stores a new entry, assigning its ID.
	// A zero IngestedAt defaults to LoggedAt; a zero LoggedAt defaults
	// to the current time.
	Append(entry LogEntry) (EntryID, error)
}

// InMemoryStore is an append-only store, safe for concurrent use.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []LogEntry
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{now: time.Now}
}

func (s *InMemoryStore) Append(entry LogEntry) (EntryID, error) {
	normalizeEntry(&entry, s.now)
	if err := Validate(entry); err != nil {
		return EntryID{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return entry.ID, nil
}

func (s *InMemoryStore) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewSnapshot(s.entries)
}

func normalizeEntry(entry *LogEntry, now func() time.Time) {
	if entry.ID == (EntryID{}) {
		entry.ID = uuid.New()
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = now()
	}
	if entry.IngestedAt.IsZero() {
		entry.IngestedAt = entry.LoggedAt
	}
}
