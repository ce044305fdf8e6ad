// Package shelllog implements the shell's optional JSONL debug log
// (SPEC_FULL.md §2.5), adapted line-for-line from internal/nope/debug.go's
// DebugLogger: nil-safe, one JSON object per line, enabled by an
// environment variable rather than a config flag (this shell has no
// per-directory config root to resolve relative paths against, unlike
// nope's project-root-relative debug path).
package shelllog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tidwall/pretty"
)

// Logger writes JSONL debug entries to a file. Nil-safe: calling Log on a
// nil receiver is a no-op, so callers can hold a *Logger unconditionally
// and skip an "if debugging" branch at every call site.
type Logger struct {
	f         *os.File
	sessionID string
}

// New opens path for append and tags every subsequent entry with a fresh
// session id (go-nanoid, SPEC_FULL.md §2.5) so logs from concurrent shell
// sessions sharing one debug file can be told apart. Returns nil if path
// is empty or the file can't be opened (never fatal to the caller).
func New(path string) *Logger {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellkit: debug log: %v\n", err)
		return nil
	}
	id, err := gonanoid.New(10)
	if err != nil {
		id = "unknown"
	}
	return &Logger{f: f, sessionID: id}
}

// Log writes a JSONL entry. Nil-safe.
func (l *Logger) Log(fields map[string]any) {
	if l == nil {
		return
	}
	fields["ts"] = time.Now().Format(time.RFC3339Nano)
	fields["session"] = l.sessionID
	data, err := json.Marshal(fields)
	if err != nil {
		return
	}
	l.f.Write(data)
	l.f.Write([]byte("\n"))
}

// Notice implements history.Notifier, logging an external-history-change
// event (SPEC_FULL.md §3.3).
func (l *Logger) Notice(path string) {
	l.Log(map[string]any{"event": "histfile_external_change", "path": path})
}

// Close closes the underlying file. Nil-safe.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.f.Close()
}

// Dump re-formats a JSONL debug log for human inspection, pretty-printing
// each line with tidwall/pretty (SPEC_FULL.md §2.5). Malformed lines are
// passed through unchanged rather than dropped, so a partially-written
// final line doesn't lose information.
func Dump(jsonl []byte) []byte {
	var out []byte
	start := 0
	for i := 0; i <= len(jsonl); i++ {
		if i == len(jsonl) || jsonl[i] == '\n' {
			line := jsonl[start:i]
			if len(line) > 0 {
				if json.Valid(line) {
					out = append(out, pretty.Pretty(line)...)
				} else {
					out = append(out, line...)
					out = append(out, '\n')
				}
			}
			start = i + 1
		}
	}
	return out
}
