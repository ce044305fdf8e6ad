package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddAndCap(t *testing.T) {
	s := New(3)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Add("d")
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	want := []string{"b", "c", "d"}
	for i, w := range want {
		if s.Entries()[i] != w {
			t.Errorf("entries[%d] = %q, want %q", i, s.Entries()[i], w)
		}
	}
}

func TestHistoryCapInvariant51Insertions(t *testing.T) {
	s := New(50)
	for i := 0; i < 51; i++ {
		s.Add(strings.Repeat("x", 1) + string(rune('a'+i%26)))
	}
	if s.Len() != 50 {
		t.Fatalf("len = %d, want 50", s.Len())
	}
	// The very first inserted entry must be gone.
	first := "xa"
	for _, e := range s.Entries() {
		if e == first && s.Entries()[0] == first {
			t.Errorf("first entry %q should have been evicted", first)
		}
	}
}

func TestEvictionReducesPersistedCount(t *testing.T) {
	s := New(2)
	s.Add("a")
	s.Add("b")
	s.persistedCount = 2
	s.Add("c") // evicts "a", persistedCount should drop to 1
	if s.persistedCount != 1 {
		t.Errorf("persistedCount = %d, want 1", s.persistedCount)
	}
}

func TestPersistedCountClampedAtZero(t *testing.T) {
	s := New(1)
	s.persistedCount = 0
	s.Add("a")
	s.Add("b") // evicts "a"; persistedCount was already 0
	if s.persistedCount != 0 {
		t.Errorf("persistedCount = %d, want 0", s.persistedCount)
	}
}

func TestLoadFileSetsPersistedCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")
	if err := os.WriteFile(path, []byte("a\nb\n\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(50)
	if err := s.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3 (blank line ignored)", s.Len())
	}
	if s.PersistedCount() != 3 {
		t.Errorf("persistedCount = %d, want 3", s.PersistedCount())
	}
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	s := New(50)
	if err := s.LoadFile(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
}

func TestAppendFileWritesDeltaAndAdvances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")

	s := New(50)
	s.Add("a")
	s.Add("b")
	if err := s.AppendFile(path); err != nil {
		t.Fatal(err)
	}
	s.Add("c")
	if err := s.AppendFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\nc\n" {
		t.Errorf("file content = %q", string(data))
	}
	if s.PersistedCount() != 3 {
		t.Errorf("persistedCount = %d, want 3", s.PersistedCount())
	}
}

func TestAppendFileNoopWhenNothingPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")
	s := New(50)
	s.Add("a")
	if err := s.AppendFile(path); err != nil {
		t.Fatal(err)
	}
	// Second call: nothing new pending, file must not be touched/created again oddly.
	if err := s.AppendFile(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "a\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestWriteFileOverwritesWithoutResettingPersistedCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")

	s := New(50)
	s.Add("a")
	s.Add("b")
	if err := s.AppendFile(path); err != nil { // persistedCount -> 2
		t.Fatal(err)
	}
	s.Add("c")
	if err := s.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "a\nb\nc\n" {
		t.Errorf("file content after -w = %q", string(data))
	}
	if s.PersistedCount() != 2 {
		t.Errorf("persistedCount after -w = %d, want unchanged 2", s.PersistedCount())
	}

	// A subsequent -a re-appends "c" (already on disk) because persistedCount
	// wasn't advanced by -w — this is the documented quirk (spec.md §9).
	if err := s.AppendFile(path); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "a\nb\nc\nc\n" {
		t.Errorf("file content after -a following -w = %q", string(data))
	}
}

func TestMergeFileAppendsWithoutAdvancingPersistedCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "other")
	if err := os.WriteFile(path, []byte("x\ny\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(50)
	s.Add("a")
	if err := s.MergeFile(path); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if s.PersistedCount() != 0 {
		t.Errorf("persistedCount = %d, want unchanged 0", s.PersistedCount())
	}
}
