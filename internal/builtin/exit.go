package builtin

import (
	"io"
	"os"
	"strconv"

	"github.com/toba/shellkit/internal/shellstate"
)

// exit flushes pending history, restores terminal mode, and terminates
// the process (spec.md §4.D). Because it calls os.Exit directly, it
// terminates the whole process even when invoked as one stage of a
// pipeline — spec.md §4.D notes this is deliberate ("this matches the
// source").
func exit(argv []string, _ io.Reader, _, errw io.Writer, st *shellstate.State) {
	code := 0
	if len(argv) > 1 {
		if n, err := strconv.Atoi(argv[1]); err == nil {
			code = n
		}
	}

	if err := st.Flush(); err != nil {
		// History flush failure must not block shutdown; report and continue.
		io.WriteString(errw, "exit: "+underlyingErr(err)+"\n")
	}
	if st.Log != nil {
		st.Log.Close()
	}
	if st.RestoreTerm != nil {
		st.RestoreTerm()
	}
	os.Exit(code)
}
