// Package redirect implements the redirection-operator parser (spec.md
// §4.B): it scans a stage's argument vector for `>`, `1>`, `>>`, `1>>`,
// `2>`, `2>>` tokens, removes each operator and its target path from the
// vector, and returns the resulting stdout/stderr sinks. Grounded on the
// operator-scan-and-splice loop in the CodeCrafters-shell reference
// (other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go), which
// performs exactly this scan over a freshly tokenized argv.
package redirect

// Kind identifies how a stream is wired for a stage.
type Kind int

const (
	// Inherit means the stage uses whatever descriptor the pipeline
	// driver otherwise assigned it (parent stdout/stderr, or a pipe end).
	Inherit Kind = iota
	// Truncate opens the target path with O_TRUNC|O_CREATE.
	Truncate
	// AppendMode opens the target path with O_APPEND|O_CREATE.
	AppendMode
)

// Sink describes where a stage's stdout or stderr is wired.
type Sink struct {
	Kind Kind
	Path string
}

// Result holds the parsed redirections for one stage.
type Result struct {
	Argv   []string
	Stdout Sink
	Stderr Sink
}

var stdoutOps = map[string]bool{">": true, "1>": true, ">>": true, "1>>": true}
var appendOps = map[string]bool{">>": true, "1>>": true, "2>>": true}
var stderrOps = map[string]bool{"2>": true, "2>>": true}

// IsOperator reports whether tok is one of the six recognized redirection
// tokens. Exported for the completion engine (internal/complete), which
// must not treat an operator as a command-name prefix.
func IsOperator(tok string) bool {
	return stdoutOps[tok] || stderrOps[tok]
}

// Parse scans argv left to right and extracts redirection operators,
// returning the remaining argument vector and the two sinks. An operator
// with no following token is dropped silently (spec.md §4.B). Later
// operators for the same stream overwrite earlier ones.
func Parse(argv []string) Result {
	res := Result{Stdout: Sink{Kind: Inherit}, Stderr: Sink{Kind: Inherit}}
	out := make([]string, 0, len(argv))

	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case stdoutOps[tok]:
			if i+1 >= len(argv) {
				// Dangling operator: drop it, nothing follows to consume.
				continue
			}
			res.Stdout = Sink{Kind: kindFor(tok, appendOps), Path: argv[i+1]}
			i++ // also consume the path token
		case stderrOps[tok]:
			if i+1 >= len(argv) {
				continue
			}
			res.Stderr = Sink{Kind: kindFor(tok, appendOps), Path: argv[i+1]}
			i++
		default:
			out = append(out, tok)
		}
	}

	res.Argv = out
	return res
}

func kindFor(tok string, appendSet map[string]bool) Kind {
	if appendSet[tok] {
		return AppendMode
	}
	return Truncate
}
