// Package editor implements the raw-mode line editor (spec.md §4.G):
// byte-by-byte terminal reads, manual echo, destructive backspace,
// history up/down navigation, and the tab-completion trigger. Grounded
// on the raw-mode REPL loop in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go
// (term.MakeRaw + reader.ReadByte dispatch), generalized from that
// reference's single switch statement into the fuller per-byte state
// machine spec.md §4.G and §4.H require (history cursor, two-stage tab,
// SIGINT recovery).
package editor

// MaxLineBytes is the line buffer's capacity (spec.md §3).
const MaxLineBytes = 1024

// LineBuffer is the in-progress input line plus its history-navigation
// state (spec.md §3 "Line buffer"). It holds no I/O; Editor drives it
// from raw terminal bytes and handles echoing.
type LineBuffer struct {
	buf           []byte
	savedDraft    string
	historyCursor int // -1 = editing the live draft
	lastWasTab    bool
}

// NewLineBuffer returns an empty buffer positioned on the live draft.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{historyCursor: -1}
}

// String returns the buffer's current text.
func (b *LineBuffer) String() string {
	return string(b.buf)
}

// Len returns the buffer's current byte length.
func (b *LineBuffer) Len() int {
	return len(b.buf)
}

// LastWasTab reports whether the previous keystroke was an unresolved
// Tab (spec.md §4.I's two-press ambiguity state).
func (b *LineBuffer) LastWasTab() bool {
	return b.lastWasTab
}

// SetLastWasTab updates the two-press tab state; any non-Tab keystroke
// clears it.
func (b *LineBuffer) SetLastWasTab(v bool) {
	b.lastWasTab = v
}

// Append adds c to the buffer if under MaxLineBytes, resets the history
// cursor to -1 (editing diverges from history), and reports whether the
// byte was accepted.
func (b *LineBuffer) Append(c byte) bool {
	if len(b.buf) >= MaxLineBytes {
		return false
	}
	b.buf = append(b.buf, c)
	b.historyCursor = -1
	return true
}

// Backspace removes the last byte if the buffer is non-empty, resets the
// history cursor to -1, and reports whether a byte was removed.
func (b *LineBuffer) Backspace() bool {
	if len(b.buf) == 0 {
		return false
	}
	b.buf = b.buf[:len(b.buf)-1]
	b.historyCursor = -1
	return true
}

// Reset clears the buffer and its history-navigation state, for use
// after a line is submitted.
func (b *LineBuffer) Reset() {
	b.buf = b.buf[:0]
	b.savedDraft = ""
	b.historyCursor = -1
	b.lastWasTab = false
}

// ReplacePrefix overwrites the buffer's trailing prefix-length bytes with
// replacement, used by the completion engine's Extend outcome. It does
// not touch the history cursor (completion is not history navigation).
func (b *LineBuffer) ReplacePrefix(prefixLen int, replacement string) {
	if prefixLen > len(b.buf) {
		prefixLen = len(b.buf)
	}
	b.buf = append(b.buf[:len(b.buf)-prefixLen], replacement...)
}

func (b *LineBuffer) setText(text string) {
	if len(text) > MaxLineBytes {
		text = text[:MaxLineBytes]
	}
	b.buf = append(b.buf[:0], text...)
}

// Up implements spec.md §4.H's ↑ handling: entering navigation saves the
// current draft and jumps to the newest entry; subsequent presses move
// toward older entries, stopping at the oldest. No-op if entries is
// empty. Returns the text now in the buffer and whether it changed.
func (b *LineBuffer) Up(entries []string) (text string, changed bool) {
	if len(entries) == 0 {
		return b.String(), false
	}
	if b.historyCursor == -1 {
		b.savedDraft = b.String()
		b.historyCursor = len(entries) - 1
	} else if b.historyCursor > 0 {
		b.historyCursor--
	}
	b.setText(entries[b.historyCursor])
	return b.String(), true
}

// Down implements spec.md §4.H's ↓ handling: moves toward newer entries;
// passing the newest restores the saved draft and exits navigation
// (historyCursor = -1). A no-op when not currently navigating history.
func (b *LineBuffer) Down(entries []string) (text string, changed bool) {
	if b.historyCursor == -1 {
		return b.String(), false
	}
	b.historyCursor++
	if b.historyCursor >= len(entries) {
		b.historyCursor = -1
		b.setText(b.savedDraft)
	} else {
		b.setText(entries[b.historyCursor])
	}
	return b.String(), true
}
