package shellstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesHistoryStore(t *testing.T) {
	st := New(10)
	if st.History == nil {
		t.Fatal("expected non-nil History store")
	}
	if st.History.Capacity() != 10 {
		t.Errorf("Capacity = %d, want 10", st.History.Capacity())
	}
}

func TestFlushNoopWhenHistFileUnset(t *testing.T) {
	st := New(10)
	if err := st.Flush(); err != nil {
		t.Errorf("Flush with no HistFile should be a no-op, got %v", err)
	}
}

func TestFlushAppendsPendingEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")

	st := New(10)
	st.HistFile = path
	st.History.Add("a")
	st.History.Add("b")

	if err := st.Flush(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a\nb\n" {
		t.Errorf("file = %q", got)
	}
}
