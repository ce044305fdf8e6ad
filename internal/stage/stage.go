// Package stage implements the stage executor (spec.md §4.E): given a
// parsed stage and its wired (in, out, err) streams, it layers any
// stage-level redirection on top, then either runs a built-in inline
// (handing it the stage's streams explicitly, so no process-wide stream
// has to be saved or restored) or execs an external program with those streams dup'd onto its
// stdin/stdout/stderr. Grounded on the per-command redirection-file
// open/close block in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go, adapted
// from an inline switch into a reusable executor.
package stage

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/toba/shellkit/internal/builtin"
	"github.com/toba/shellkit/internal/pathresolve"
	"github.com/toba/shellkit/internal/redirect"
	"github.com/toba/shellkit/internal/shellstate"
)

// Stage is one command in a pipeline (spec.md §3).
type Stage struct {
	Argv   []string
	Stdout redirect.Sink
	Stderr redirect.Sink
}

// FromResult wraps an already-parsed redirect.Result as a Stage.
func FromResult(r redirect.Result) Stage {
	return Stage{Argv: r.Argv, Stdout: r.Stdout, Stderr: r.Stderr}
}

// openSinks resolves a stage's stdout/stderr sinks into concrete
// io.Writers, opening any redirection targets. It returns the writers to
// use plus a cleanup func that closes whatever files were opened. On
// error, err is non-nil and the stage must be skipped entirely (spec.md
// §7: "a failed redirection open on one pipeline stage affects only that
// stage").
func openSinks(stdout, stderr redirect.Sink, fallbackOut, fallbackErr io.Writer) (out, errw io.Writer, cleanup func(), err error) {
	var files []*os.File
	cleanup = func() {
		for _, f := range files {
			f.Close()
		}
	}

	out = fallbackOut
	if stdout.Kind != redirect.Inherit {
		f, oerr := openSink(stdout)
		if oerr != nil {
			return nil, nil, cleanup, oerr
		}
		files = append(files, f)
		out = f
	}

	errw = fallbackErr
	if stderr.Kind != redirect.Inherit {
		f, oerr := openSink(stderr)
		if oerr != nil {
			cleanup()
			return nil, nil, func() {}, oerr
		}
		files = append(files, f)
		errw = f
	}

	return out, errw, cleanup, nil
}

func openSink(s redirect.Sink) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if s.Kind == redirect.AppendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(s.Path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return f, nil
}

// Result reports how a stage finished, for the pipeline driver's
// bookkeeping (e.g. whether an external child needs waiting on).
type Result struct {
	// Cmd is non-nil if the stage was spawned as an external process;
	// the caller is responsible for Wait()ing on it.
	Cmd *exec.Cmd
}

// Run executes one stage. in/out/err are the pipeline-provided streams
// (a pipe end or the process's own stdin/stdout/stderr); stage-level
// redirection, if present, takes priority over them. For built-ins the
// handler runs inline in the current goroutine — crucially, state
// mutations like `cd` persist in the parent process (spec.md §4.F). For
// externals, Run starts the child and returns immediately; the caller
// must Wait() the returned Result.Cmd.
func Run(st Stage, in io.Reader, out, errw io.Writer, state *shellstate.State, pathEnv string) Result {
	if len(st.Argv) == 0 {
		return Result{}
	}

	resolvedOut, resolvedErr, cleanup, err := openSinks(st.Stdout, st.Stderr, out, errw)
	if err != nil {
		fmt.Fprintf(errw, "%s: %s\n", st.Argv[0], err)
		return Result{}
	}
	defer cleanup()

	name := st.Argv[0]
	if builtin.IsBuiltin(name) {
		// Save/restore is a no-op in this design: the handler only ever
		// sees the explicit in/out/err passed to it, never a process-wide
		// global, so there is nothing to leak across the call (spec.md
		// §4.E's restoration guarantee is satisfied structurally).
		builtin.Run(st.Argv, in, resolvedOut, resolvedErr, state)
		return Result{}
	}

	path, ok := pathresolve.Resolve(name, pathEnv, state.ExtraPath)
	if !ok {
		fmt.Fprintln(out, state.Styles.NotFound(fmt.Sprintf("%s: command not found", name)))
		return Result{}
	}

	cmd := exec.Command(path, st.Argv[1:]...)
	cmd.Args[0] = name
	cmd.Stdin = in
	cmd.Stdout = resolvedOut
	cmd.Stderr = resolvedErr

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(errw, "%s: %s\n", name, err)
		return Result{}
	}
	return Result{Cmd: cmd}
}
