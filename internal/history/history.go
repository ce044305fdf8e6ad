// Package history implements the bounded history store (spec.md §3, §4.H):
// an ordered ring of command lines capped at a configurable capacity, with
// load/append/overwrite persistence semantics. Grounded on the
// read-is-optional, write-is-explicit file handling style used throughout
// this project's config loading (internal/config, adapted from
// internal/nope/config.go), applied here to a plain-text, one-line-per-
// entry format instead of YAML.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Store is the bounded history ring described in spec.md §3.
type Store struct {
	capacity       int
	entries        []string
	persistedCount int
}

// New creates a Store capped at capacity entries. capacity <= 0 is treated
// as 1 (a history of zero is not meaningful and the cap invariant in
// spec.md requires capacity >= 1 implicitly via "0 <= persisted_count <=
// entries.len() <= 50").
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	return &Store{capacity: capacity}
}

// Add appends line, evicting from the front if capacity is exceeded. Each
// eviction decrements persistedCount (clamped at 0), per spec.md §3.
func (s *Store) Add(line string) {
	s.entries = append(s.entries, line)
	if len(s.entries) > s.capacity {
		evict := len(s.entries) - s.capacity
		s.entries = s.entries[evict:]
		s.persistedCount -= evict
		if s.persistedCount < 0 {
			s.persistedCount = 0
		}
	}
}

// Entries returns the history lines, oldest first. The returned slice must
// not be mutated by the caller.
func (s *Store) Entries() []string {
	return s.entries
}

// Len returns the current entry count.
func (s *Store) Len() int {
	return len(s.entries)
}

// Capacity returns the configured cap.
func (s *Store) Capacity() int {
	return s.capacity
}

// PersistedCount returns the number of entries already written to the
// persistence file during this process's lifetime.
func (s *Store) PersistedCount() int {
	return s.persistedCount
}

// LoadFile reads path line by line (ignoring empty lines), adds each via
// Add (so the same capacity/eviction rule applies to a long file), then
// sets persistedCount to the resulting entry count — "persisted_count is
// set to the loaded size" (spec.md §4.H). A missing file is not an error.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening history file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading history file %s: %w", path, err)
	}

	s.persistedCount = len(s.entries)
	return nil
}

// WriteFile overwrites path with the complete current history, one entry
// per line. It does NOT reset persistedCount — spec.md §9 documents this
// as a preserved quirk: a subsequent -a will recompute its delta from the
// pre-write mark, re-appending entries already present in the file.
func (s *Store) WriteFile(path string) error {
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing history file %s: %w", path, err)
	}
	return nil
}

// AppendFile appends entries[persistedCount:] to path (creating it if
// needed) and advances persistedCount to entries.len(). Used both by
// `history -a` and by the exit builtin's flush-on-exit (spec.md §4.D,
// §4.H).
func (s *Store) AppendFile(path string) error {
	if s.persistedCount >= len(s.entries) {
		return nil
	}
	pending := s.entries[s.persistedCount:]

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("appending history file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range pending {
		w.WriteString(e)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("appending history file %s: %w", path, err)
	}

	s.persistedCount = len(s.entries)
	return nil
}

// MergeFile reads path and appends (via Add) every non-empty line of it,
// including lines the Store already holds, per `history -r` (spec.md
// §4.D: "merges a file's contents into the buffer"). Unlike LoadFile, it
// does not reset
// persistedCount — the merged lines are not yet considered persisted.
func (s *Store) MergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading history file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s.Add(line)
	}
	return scanner.Err()
}
