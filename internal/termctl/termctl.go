// Package termctl wraps terminal raw-mode control (spec.md §3 "Terminal
// mode state", §4.G, §5's shared-resource restoration requirement).
// Grounded directly on golang.org/x/term usage in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go
// (term.MakeRaw/term.Restore around the whole REPL) and
// toba-jig/cmd/todo_list.go's term.GetSize call.
package termctl

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Mode captures the original terminal state so it can be restored.
type Mode struct {
	fd    int
	state *term.State
}

// IsTTY reports whether fd refers to a terminal (SPEC_FULL.md §2.6),
// grounded on mattn/go-isatty.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Triple reports (isatty(0), isatty(1), isatty(2)) as spec.md §8's
// descriptor-restoration invariant is phrased.
func Triple() (stdin, stdout, stderr bool) {
	return IsTTY(0), IsTTY(1), IsTTY(2)
}

// MakeRaw puts fd into raw mode (canonical processing and local echo
// disabled; the shell performs its own echo) and returns a Mode that can
// restore the original state. If fd is not a terminal, MakeRaw returns a
// Mode whose Restore is a no-op and ok=false, so callers can fall back to
// a degraded line-buffered mode instead of failing the whole session.
func MakeRaw(fd int) (m Mode, ok bool) {
	if !IsTTY(uintptr(fd)) {
		return Mode{fd: fd}, false
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return Mode{fd: fd}, false
	}
	return Mode{fd: fd, state: state}, true
}

// Restore returns the terminal to the state captured by MakeRaw. MUST be
// called on every exit path (normal exit, signal, fatal error) per
// spec.md §5. Safe to call on a zero-value or already-restored Mode.
func (m Mode) Restore() {
	if m.state == nil {
		return
	}
	term.Restore(m.fd, m.state)
}

// Size reports the terminal's (width, height) for the calling fd, or
// (0, 0, false) if unavailable — used to lay out the multi-candidate
// completion listing (spec.md §4.I) across the available width.
func Size(fd int) (width, height int, ok bool) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
