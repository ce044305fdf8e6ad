package editor

import "testing"

func TestAppendAndString(t *testing.T) {
	b := NewLineBuffer()
	for _, c := range []byte("pwd") {
		if !b.Append(c) {
			t.Fatal("Append rejected byte under capacity")
		}
	}
	if b.String() != "pwd" {
		t.Errorf("String = %q", b.String())
	}
}

func TestAppendRejectsPastCapacity(t *testing.T) {
	b := NewLineBuffer()
	for i := 0; i < MaxLineBytes; i++ {
		if !b.Append('x') {
			t.Fatalf("Append rejected at %d, want capacity %d", i, MaxLineBytes)
		}
	}
	if b.Append('x') {
		t.Error("Append accepted byte past capacity")
	}
}

func TestBackspaceRemovesLastByte(t *testing.T) {
	b := NewLineBuffer()
	b.Append('a')
	b.Append('b')
	if !b.Backspace() {
		t.Fatal("Backspace reported no-op on non-empty buffer")
	}
	if b.String() != "a" {
		t.Errorf("String after backspace = %q", b.String())
	}
}

func TestBackspaceOnEmptyIsNoop(t *testing.T) {
	b := NewLineBuffer()
	if b.Backspace() {
		t.Error("Backspace on empty buffer should be a no-op")
	}
}

func TestResetClearsEverything(t *testing.T) {
	b := NewLineBuffer()
	b.Append('x')
	b.Up([]string{"a"})
	b.SetLastWasTab(true)
	b.Reset()
	if b.String() != "" || b.Len() != 0 || b.LastWasTab() {
		t.Errorf("Reset left state: %q %v", b.String(), b.LastWasTab())
	}
}

func TestHistoryUpNavigatesFromNewest(t *testing.T) {
	b := NewLineBuffer()
	b.Append('x')
	entries := []string{"first", "second", "third"}

	text, changed := b.Up(entries)
	if !changed || text != "third" {
		t.Errorf("first Up = %q, %v", text, changed)
	}
	text, changed = b.Up(entries)
	if !changed || text != "second" {
		t.Errorf("second Up = %q, %v", text, changed)
	}
	text, changed = b.Up(entries)
	if !changed || text != "first" {
		t.Errorf("third Up = %q, %v", text, changed)
	}
	// Stops at oldest.
	text, changed = b.Up(entries)
	if !changed || text != "first" {
		t.Errorf("Up past oldest = %q, %v", text, changed)
	}
}

func TestHistoryDownRestoresDraftPastNewest(t *testing.T) {
	b := NewLineBuffer()
	b.Append('d')
	b.Append('r')
	b.Append('a')
	b.Append('f')
	b.Append('t')
	entries := []string{"first", "second"}

	b.Up(entries) // -> "second" (newest), saves "draft"
	text, changed := b.Down(entries)
	if !changed || text != "draft" {
		t.Errorf("Down past newest = %q, %v", text, changed)
	}
	if b.historyCursor != -1 {
		t.Errorf("historyCursor = %d, want -1", b.historyCursor)
	}
}

func TestHistoryUpNoopOnEmptyHistory(t *testing.T) {
	b := NewLineBuffer()
	b.Append('x')
	_, changed := b.Up(nil)
	if changed {
		t.Error("Up on empty history should be a no-op")
	}
	if b.String() != "x" {
		t.Errorf("String = %q", b.String())
	}
}

func TestTypingResetsHistoryCursor(t *testing.T) {
	b := NewLineBuffer()
	entries := []string{"pwd"}
	b.Up(entries)
	b.Append('!')
	if b.historyCursor != -1 {
		t.Errorf("historyCursor after typing = %d, want -1", b.historyCursor)
	}
}

func TestReplacePrefixRewritesTrailingSlice(t *testing.T) {
	b := NewLineBuffer()
	for _, c := range []byte("ech") {
		b.Append(c)
	}
	b.ReplacePrefix(3, "echo")
	if b.String() != "echo" {
		t.Errorf("String = %q", b.String())
	}
}

func TestReplacePrefixWithPrecedingText(t *testing.T) {
	b := NewLineBuffer()
	for _, c := range []byte("cat fo") {
		b.Append(c)
	}
	b.ReplacePrefix(2, "foo.txt")
	if b.String() != "cat foo.txt" {
		t.Errorf("String = %q", b.String())
	}
}
