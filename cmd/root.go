// Package cmd wires the shellkit binary's CLI surface with
// spf13/cobra, grounded on toba-jig/cmd/root.go's PersistentFlags +
// Execute() pattern.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/shellkit/internal/config"
	"github.com/toba/shellkit/internal/constants"
	"github.com/toba/shellkit/internal/editor"
	"github.com/toba/shellkit/internal/history"
	"github.com/toba/shellkit/internal/pipeline"
	"github.com/toba/shellkit/internal/shelllog"
	"github.com/toba/shellkit/internal/shellstate"
	"github.com/toba/shellkit/internal/style"
	"github.com/toba/shellkit/internal/termctl"
)

var (
	rcfilePath string
	noRC       bool
)

var rootCmd = &cobra.Command{
	Use:   "shellkit",
	Short: "An interactive POSIX-style command shell",
	Long:  "shellkit is an interactive command shell: line editing, quoted tokenization, redirection, pipelines, a fixed built-in set, PATH-based external execution, and history persistence.",
	RunE:  runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rcfilePath, "rcfile", "", "path to config file (default ~/.shellkitrc.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noRC, "no-rc", false, "skip loading the rc file, using built-in defaults")
}

// Execute runs the root command, exiting the process with status 1 on
// any setup error. The shell's own `exit` builtin (internal/builtin)
// terminates the process directly; RunE returning nil is the normal
// "EOF on stdin" exit path (spec.md §6: exit status 0).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if !noRC {
		loaded, err := config.Load(config.ResolvePath(rcfilePath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "shellkit: %s\n", err)
		}
		cfg = loaded
	}

	st := shellstate.New(cfg.HistoryCapacity)
	st.ExtraPath = cfg.ExtraPath
	st.HistFile = firstNonEmpty(os.Getenv("HISTFILE"), cfg.HistoryFile)
	st.Styles = style.New(cfg.ColorEnabled() && termctl.IsTTY(os.Stdout.Fd()))
	st.Log = shelllog.New(os.Getenv(logFileEnvVar))

	stdinTTY, stdoutTTY, stderrTTY := termctl.Triple()
	st.Log.Log(map[string]any{
		"event":  "session_start",
		"stdin":  stdinTTY,
		"stdout": stdoutTTY,
		"stderr": stderrTTY,
	})

	if st.HistFile != "" {
		if err := st.History.LoadFile(st.HistFile); err != nil {
			fmt.Fprintf(os.Stderr, "shellkit: %s\n", err)
		}
		stopWatch := history.WatchExternalChanges(st.HistFile, st.Log)
		defer stopWatch()
	}

	printBanner(cfg)

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "$ "
	}

	ed := editor.New(st, os.Stdin, os.Stdout, prompt, func() string { return os.Getenv("PATH") })
	ed.RunREPL(func(line string) {
		if line == "" {
			return
		}
		st.History.Add(line)
		if st.Log != nil {
			st.Log.Log(map[string]any{"event": "line", "text": line})
		}
		pipeline.Run(line, os.Stdin, os.Stdout, os.Stderr, st, os.Getenv("PATH"))
	})

	return nil
}

const logFileEnvVar = constants.DebugEnvVar

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
