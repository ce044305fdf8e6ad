package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/toba/shellkit/internal/shellstate"
)

// cd implements spec.md §4.D's cd semantics, including the "too many
// arguments" and "HOME not set" error phrasings.
func cd(argv []string, _ io.Reader, _ io.Writer, errw io.Writer, _ *shellstate.State) {
	args := argv[1:]

	var target string
	switch {
	case len(args) == 0, len(args) == 1 && args[0] == "~":
		home := os.Getenv("HOME")
		if home == "" {
			fmt.Fprintln(errw, "cd: HOME not set")
			return
		}
		target = home
	case len(args) == 1:
		target = args[0]
	default:
		fmt.Fprintln(errw, "cd: too many arguments")
		return
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(errw, "cd: %s: %s\n", target, underlyingErr(err))
	}
}
