// Package complete implements the tab-completion engine (spec.md §4.I):
// prefix search over built-ins union PATH executables, longest-common-
// prefix computation, and the ambiguity-listing state machine triggered
// by a second consecutive tab. Grounded on the completion type in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go
// (autocomplete.Completion), generalized from "first builtin match wins"
// to the full candidate-set/LCP algorithm spec.md requires.
package complete

import (
	"os"
	"sort"
	"strings"

	"github.com/toba/shellkit/internal/builtin"
	"github.com/toba/shellkit/internal/pathresolve"
	"github.com/toba/shellkit/internal/redirect"
)

// Candidates returns the sorted, deduplicated candidate set for prefix,
// per spec.md §4.I: built-in names first; if none match, PATH
// executables (first-occurrence-wins across directories in PATH order).
// A prefix that is itself a redirection operator (">", ">>", ...) has no
// command-name candidates: it's an operand position, not a command name.
func Candidates(prefix, pathEnv string, extra []string) []string {
	if redirect.IsOperator(prefix) {
		return nil
	}

	var names []string
	for _, n := range builtin.Names() {
		if strings.HasPrefix(n, prefix) {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		names = pathCandidates(prefix, pathEnv, extra)
	}
	sort.Strings(names)
	return names
}

func pathCandidates(prefix, pathEnv string, extra []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range pathresolve.Dirs(pathEnv, extra) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
				continue
			}
			if seen[e.Name()] {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode().Perm()&0o111 == 0 {
				continue
			}
			seen[e.Name()] = true
			names = append(names, e.Name())
		}
	}
	return names
}

// LCP returns the longest common prefix of candidates. Empty if
// candidates is empty.
func LCP(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	lcp := candidates[0]
	for _, c := range candidates[1:] {
		lcp = commonPrefix(lcp, c)
		if lcp == "" {
			break
		}
	}
	return lcp
}

// Layout groups candidates into rows that each fit within width (a
// two-space gutter between entries on the same row), for the multi-
// candidate listing spec.md §4.I prints on a second consecutive tab. A
// non-positive width (no known terminal size) falls back to one row.
func Layout(candidates []string, width int) [][]string {
	if width <= 0 || len(candidates) == 0 {
		return [][]string{candidates}
	}

	var rows [][]string
	var row []string
	rowLen := 0
	for _, c := range candidates {
		add := len(c)
		if len(row) > 0 {
			add += 2
		}
		if rowLen+add > width && len(row) > 0 {
			rows = append(rows, row)
			row, rowLen = nil, 0
			add = len(c)
		}
		row = append(row, c)
		rowLen += add
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
