package entry_log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fastjson"
)

// JSONLStore persists entries as one JSON object per line, append-only.
// The on-disk format round-trips LoggedAt and IngestedAt exactly
// (RFC 3339 with nanoseconds): the engine's correctness depends on the
// ingestion/logging time distinction surviving persistence.
type JSONLStore struct {
	mu     sync.Mutex
	path   string
	parser fastjson.ParserPool
	now    func() time.Time
}

func NewJSONLStore(path string) *JSONLStore {
	return &JSONLStore{path: path, now: time.Now}
}

func (s *JSONLStore) Append(entry LogEntry) (EntryID, error) {
	normalizeEntry(&entry, s.now)
	if err := Validate(entry); err != nil {
		return EntryID{}, err
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return EntryID{}, fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return EntryID{}, fmt.Errorf("open log %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return EntryID{}, fmt.Errorf("append to log %s: %w", s.path, err)
	}
	return entry.ID, nil
}

// Snapshot reads the whole file and materializes an immutable view.
// A missing file yields an empty snapshot, not an error; a malformed
// line fails fast with its line number.
func (s *JSONLStore) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return NewSnapshot(nil)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("open log %s: %w", s.path, err)
	}
	defer f.Close()

	p := s.parser.Get()
	defer s.parser.Put(p)

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		v, err := p.ParseBytes(raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("parse log %s line %d: %w", s.path, lineNo, err)
		}
		entry, err := entryFromValue(v)
		if err != nil {
			return Snapshot{}, fmt.Errorf("parse log %s line %d: %w", s.path, lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read log %s: %w", s.path, err)
	}
	return NewSnapshot(entries)
}

func entryFromValue(v *fastjson.Value) (LogEntry, error) {
	var entry LogEntry

	idStr := string(v.GetStringBytes("id"))
	if idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return LogEntry{}, fmt.Errorf("field id: %w", err)
		}
		entry.ID = id
	}

	loggedAt, err := parseTimeField(v, "logged_at")
	if err != nil {
		return LogEntry{}, err
	}
	entry.LoggedAt = loggedAt

	ingestedAt, err := parseTimeField(v, "ingested_at")
	if err != nil {
		return LogEntry{}, err
	}
	entry.IngestedAt = ingestedAt

	entry.Meal = string(v.GetStringBytes("meal"))
	entry.PainLevel = v.GetInt("pain_level")
	entry.StressLevel = v.GetInt("stress_level")

	if rv := v.Get("remedy"); rv != nil && rv.Type() == fastjson.TypeString {
		remedy := string(rv.GetStringBytes())
		entry.Remedy = &remedy
	}

	if cv := v.Get("context"); cv != nil && cv.Type() == fastjson.TypeObject {
		obj, _ := cv.Object()
		entry.Context = make(map[string]string, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			entry.Context[string(key)] = string(val.GetStringBytes())
		})
	}
	return entry, nil
}

func parseTimeField(v *fastjson.Value, field string) (time.Time, error) {
	raw := string(v.GetStringBytes(field))
	if raw == "" {
		return time.Time{}, fmt.Errorf("field %s: missing", field)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", field, err)
	}
	return t, nil
}
