package entry_log

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// Snapshot is the immutable, internally consistent view the analytics
// engine works on: entries ordered ascending by IngestedAt, no entry
// appearing twice. A Snapshot is materialized once per analysis call;
// the engine never holds a reference to a live, externally mutable store.
type Snapshot struct {
	entries     []LogEntry
	fingerprint uint64
}

// NewSnapshot validates, orders and fingerprints a set of entries.
// The input slice is copied; later mutation of it does not affect the
// snapshot.
func NewSnapshot(entries []LogEntry) (Snapshot, error) {
	if err := ValidateAll(entries); err != nil {
		return Snapshot{}, err
	}
	ordered := make([]LogEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IngestedAt.Before(ordered[j].IngestedAt)
	})
	seen := make(map[EntryID]struct{}, len(ordered))
	for i, e := range ordered {
		if e.ID == (EntryID{}) {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			return Snapshot{}, &ValidationError{Index: i, ID: e.ID, Field: "id", Msg: "appears twice"}
		}
		seen[e.ID] = struct{}{}
	}
	return Snapshot{entries: ordered, fingerprint: fingerprintOf(ordered)}, nil
}

// Entries returns the ordered entries. The returned slice is shared with
// the snapshot and must be treated as read-only.
func (s Snapshot) Entries() []LogEntry {
	return s.entries
}

func (s Snapshot) Len() int {
	return len(s.entries)
}

// Fingerprint is a stable hash of the snapshot contents, usable as a
// memoization key: two snapshots with the same fingerprint produce the
// same analysis results.
func (s Snapshot) Fingerprint() uint64 {
	return s.fingerprint
}

func fingerprintOf(entries []LogEntry) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	for _, e := range entries {
		h.Write(e.ID[:])
		writeInt(e.LoggedAt.UnixNano())
		writeInt(e.IngestedAt.UnixNano())
		h.Write([]byte(e.Meal))
		writeInt(int64(e.PainLevel))
		writeInt(int64(e.StressLevel))
		if e.Remedy != nil {
			h.Write([]byte(*e.Remedy))
		}
		h.Write([]byte{0})
	}
	return h.Sum64()
}
