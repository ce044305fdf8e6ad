package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/toba/shellkit/internal/shellstate"
)

// historyCmd implements spec.md §4.D's `history [N | -r file | -w file |
// -a file]`.
func historyCmd(argv []string, _ io.Reader, out, errw io.Writer, st *shellstate.State) {
	args := argv[1:]

	if len(args) == 0 {
		printHistory(out, st, -1)
		return
	}

	switch args[0] {
	case "-r":
		if len(args) < 2 {
			fmt.Fprintln(errw, "history: -r requires a file argument")
			return
		}
		if err := st.History.MergeFile(args[1]); err != nil {
			fmt.Fprintf(errw, "history: %s: %s\n", args[1], underlyingErr(err))
		}
	case "-w":
		if len(args) < 2 {
			fmt.Fprintln(errw, "history: -w requires a file argument")
			return
		}
		if err := st.History.WriteFile(args[1]); err != nil {
			fmt.Fprintf(errw, "history: %s: %s\n", args[1], underlyingErr(err))
		}
	case "-a":
		if len(args) < 2 {
			fmt.Fprintln(errw, "history: -a requires a file argument")
			return
		}
		if err := st.History.AppendFile(args[1]); err != nil {
			fmt.Fprintf(errw, "history: %s: %s\n", args[1], underlyingErr(err))
		}
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(errw, "history: %s: numeric argument required\n", args[0])
			return
		}
		printHistory(out, st, n)
	}
}

// printHistory writes entries numbered 1-based from the oldest kept,
// formatted "%5d  %s\n". limit < 0 means "all"; otherwise it is clamped
// to [0, count] and only the last `limit` entries print.
func printHistory(out io.Writer, st *shellstate.State, limit int) {
	entries := st.History.Entries()
	start := 0
	if limit >= 0 {
		if limit > len(entries) {
			limit = len(entries)
		}
		start = len(entries) - limit
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for i := start; i < len(entries); i++ {
		fmt.Fprintf(w, "%5d  %s\n", i+1, entries[i])
	}
}
