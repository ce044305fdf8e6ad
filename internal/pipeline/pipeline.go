// Package pipeline implements the pipeline driver (spec.md §4.F): split
// a line on `|`, tokenize and redirection-parse each resulting stage,
// wire N-1 pipes between them, spawn external stages concurrently, run
// built-in stages inline in the parent, and wait for every child in
// spawn order. Grounded on toba-jig's process orchestration idiom
// (internal/update's exec.Command usage) for the external half, and on
// the CodeCrafters reference's stdin/stdout/stderr-wiring loop
// (other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go) for
// the single-stage-no-pipe fast path generalized here to N stages.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/toba/shellkit/internal/redirect"
	"github.com/toba/shellkit/internal/shellstate"
	"github.com/toba/shellkit/internal/stage"
	"github.com/toba/shellkit/internal/token"
)

// Split divides a raw input line on every `|` byte. Per spec.md §6
// and §9, the split happens BEFORE tokenization and is purely
// byte-level: a literal `|` inside quotes still splits the line. This
// is a documented, deliberately preserved limitation, not an oversight.
func Split(line string) []string {
	return strings.Split(line, "|")
}

// Run executes one logical input line against the given streams. It
// always returns nil: driver-level failures (invalid pipeline,
// pipe-allocation failure) as well as built-in and external command
// errors are written to errw per spec.md §7 and never surface here.
func Run(line string, in io.Reader, out, errw io.Writer, state *shellstate.State, pathEnv string) error {
	rawStages := Split(line)

	// A lone blank stage (e.g. a whitespace-only line) is a valid no-op,
	// not an error — per spec.md §3, "Invalid pipeline" is reserved for
	// the N>=2 case where a blank stage appears between/alongside real
	// ones. Handle the single-stage path before the multi-stage empty
	// check below can misfire on it.
	if len(rawStages) == 1 {
		argv := token.Tokenize(rawStages[0])
		if len(argv) == 0 {
			return nil
		}
		stage.Run(stage.FromResult(redirect.Parse(argv)), in, out, errw, state, pathEnv)
		return nil
	}

	stages := make([]stage.Stage, 0, len(rawStages))
	for _, raw := range rawStages {
		argv := token.Tokenize(raw)
		if len(argv) == 0 {
			fmt.Fprintln(errw, state.Styles.Error("Invalid pipeline"))
			return nil
		}
		stages = append(stages, stage.FromResult(redirect.Parse(argv)))
	}

	n := len(stages)

	pipes := make([]*os.File, 0, (n-1)*2) // alternating read,write per pipe
	for k := 0; k < n-1; k++ {
		r, w, err := os.Pipe()
		if err != nil {
			for i := len(pipes) - 1; i >= 0; i-- {
				pipes[i].Close()
			}
			fmt.Fprintln(errw, state.Styles.Error(fmt.Sprintf("pipe: %s", err)))
			return nil
		}
		pipes = append(pipes, r, w)
	}

	var cmds []*exec.Cmd
	for k := 0; k < n; k++ {
		var stageIn io.Reader = in
		if k > 0 {
			stageIn = pipes[(k-1)*2]
		}
		var stageOut io.Writer = out
		if k < n-1 {
			stageOut = pipes[k*2+1]
		}

		r := stage.Run(stages[k], stageIn, stageOut, errw, state, pathEnv)
		if r.Cmd != nil {
			cmds = append(cmds, r.Cmd)
		}
	}

	// The parent closes every pipe end it holds immediately after
	// spawning, per spec.md §4.F step 4 — this is what lets a downstream
	// reader see EOF, including the shadowed-pipe case in spec.md §3
	// ("the pipe write end is still created and closed by the parent").
	for _, p := range pipes {
		p.Close()
	}

	for _, cmd := range cmds {
		cmd.Wait()
	}
	return nil
}
