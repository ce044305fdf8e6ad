// Package builtin implements the fixed built-in command set (spec.md
// §3 "Built-in registry", §4.D). Dispatch style and per-command error
// phrasing are grounded on the builtin switch in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go; the
// handler-takes-explicit-io.Writer shape follows toba-jig's convention
// of threading an io.Writer through cobra command RunE funcs rather than
// writing to os.Stdout directly (see cmd/doctor.go).
package builtin

import (
	"fmt"
	"io"

	"github.com/toba/shellkit/internal/pathresolve"
	"github.com/toba/shellkit/internal/shellstate"
)

// Names, listed in §3's enumeration order. As a map it keeps no order:
// IsBuiltin, "type" and completion all treat it as an unordered set.
var names = map[string]bool{
	"echo":    true,
	"exit":    true,
	"type":    true,
	"pwd":     true,
	"cd":      true,
	"history": true,
	"mkdir":   true,
	"rmdir":   true,
	"rm":      true,
	"touch":   true,
	"cp":      true,
	"mv":      true,
}

// IsBuiltin reports whether name is a recognized built-in, by exact byte
// equality (spec.md §3).
func IsBuiltin(name string) bool {
	return names[name]
}

// Names returns the built-in name set, used by the completion engine
// (§4.I) to search built-ins before falling back to PATH executables.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	return out
}

// Handler runs one built-in invocation. argv[0] is the built-in's own
// name; argv[1:] are its arguments. in/out/err are the stage's wired
// streams, already reflecting any per-stage redirection (spec.md §4.E).
// st carries the shell's shared mutable state (history, search path,
// styling, logging).
//
// A Handler never returns a process exit code: `exit` terminates the
// process directly from inside its own handler (spec.md §4.D — "because
// exit is implemented inline and calls the process-exit syscall
// directly, it does terminate the process even from a pipeline").
type Handler func(argv []string, in io.Reader, out, errw io.Writer, st *shellstate.State)

var handlers = map[string]Handler{
	"echo":    echo,
	"exit":    exit,
	"type":    typeCmd,
	"pwd":     pwd,
	"cd":      cd,
	"history": historyCmd,
	"mkdir":   mkdir,
	"rmdir":   rmdir,
	"rm":      rm,
	"touch":   touch,
	"cp":      cp,
	"mv":      mv,
}

// Run dispatches argv[0] to its handler. The caller must have already
// confirmed IsBuiltin(argv[0]); Run panics on an unknown name since that
// indicates a caller bug (pipeline/stage always check membership first).
func Run(argv []string, in io.Reader, out, errw io.Writer, st *shellstate.State) {
	h, ok := handlers[argv[0]]
	if !ok {
		panic(fmt.Sprintf("builtin: Run called with non-builtin %q", argv[0]))
	}
	h(argv, in, out, errw, st)
}

func echo(argv []string, _ io.Reader, out, _ io.Writer, _ *shellstate.State) {
	args := argv[1:]
	joined := ""
	for i, a := range args {
		if i > 0 {
			joined += " "
		}
		joined += a
	}
	fmt.Fprintln(out, joined)
}

func typeCmd(argv []string, _ io.Reader, out, errw io.Writer, st *shellstate.State) {
	if len(argv) < 2 {
		fmt.Fprintln(errw, "type: missing argument")
		return
	}
	name := argv[1]
	if IsBuiltin(name) {
		fmt.Fprintf(out, "%s is a shell builtin\n", name)
		return
	}
	if p, ok := pathresolve.Resolve(name, pathEnv(), st.ExtraPath); ok {
		fmt.Fprintf(out, "%s is %s\n", name, p)
		return
	}
	fmt.Fprintf(out, "%s: not found\n", name)
}

func pwd(_ []string, _ io.Reader, out, errw io.Writer, _ *shellstate.State) {
	wd, err := osGetwd()
	if err != nil {
		fmt.Fprintf(errw, "pwd: %s\n", err)
		return
	}
	fmt.Fprintln(out, wd)
}
