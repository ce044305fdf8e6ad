// Package constants defines shared string constants used across multiple
// internal packages to avoid raw-string duplication and circular imports.
package constants

const (
	// RCFileName is the name of the optional shell startup config file,
	// resolved relative to $HOME unless overridden by --rcfile.
	RCFileName = ".shellkitrc.yaml"

	// DefaultHistFileName is a history file name under $HOME. The shell
	// does not fall back to it: with HISTFILE unset and no historyFile in
	// the rc file, history is not persisted.
	DefaultHistFileName = ".shellkit_history"

	// DefaultPrompt is written when no rc file overrides it.
	DefaultPrompt = "$ "

	// DefaultHistoryCapacity is the history cap absent an rc override.
	DefaultHistoryCapacity = 50

	// DebugEnvVar names the environment variable that enables JSONL logging.
	DebugEnvVar = "SHELLKIT_DEBUG"
)
