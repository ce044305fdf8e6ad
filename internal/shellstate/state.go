// Package shellstate bundles the shell's process-wide mutable state
// (history, styling, logging, search path) into a single record threaded
// through builtin handlers and the pipeline driver, per spec.md's Design
// Note 9: "Model as a single shell-state record passed through every
// handler; avoid hidden globals except for signal handlers." Grounded on
// the App/Shell struct pattern used throughout the teacher repo
// (toba-jig/internal/todo/tui.App, the memsh Shell struct in
// other_examples) to carry session state explicitly rather than via
// package-level variables.
package shellstate

import (
	"github.com/toba/shellkit/internal/history"
	"github.com/toba/shellkit/internal/shelllog"
	"github.com/toba/shellkit/internal/style"
)

// State is the shell's shared, process-wide state.
type State struct {
	History   *history.Store
	HistFile  string // $HISTFILE at startup, else the rc file's historyFile, "" if neither is set
	ExtraPath []string
	Styles    style.Styles
	Log       *shelllog.Logger

	// RestoreTerm returns the terminal to its original mode (spec.md §5:
	// "raw mode ... MUST be restored on every non-local exit"). Set by
	// the editor after installing raw mode; nil in non-interactive tests.
	RestoreTerm func()
}

// New constructs a State with the given history capacity.
func New(historyCapacity int) *State {
	return &State{
		History: history.New(historyCapacity),
	}
}

// Flush appends pending history entries to HistFile, per spec.md §4.H's
// exit-time append semantics. A no-op if HistFile is unset.
func (s *State) Flush() error {
	if s.HistFile == "" {
		return nil
	}
	return s.History.AppendFile(s.HistFile)
}
