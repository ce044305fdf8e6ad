// Package pathresolve implements the search-path resolver (spec.md §4.C):
// splitting PATH on ':' and finding the first directory holding a regular,
// executable file with the requested name. Grounded on the PATH-walk loop
// in other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go and
// the C reference in _examples/original_source/src/main.c's
// find_executable, adapted to report directories (not just a hit/miss) so
// the completion engine (internal/complete) can reuse the same split.
package pathresolve

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs splits a colon-separated search path into its directory entries,
// skipping empty segments. extra is appended after the PATH-derived
// directories (SPEC_FULL.md §2.2's extraPath rc setting).
func Dirs(pathEnv string, extra []string) []string {
	var dirs []string
	for _, d := range strings.Split(pathEnv, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs, extra...)
	return dirs
}

// Resolve finds name on the search path described by pathEnv/extra,
// returning the absolute candidate path and true on success. It returns
// ("", false) if name is empty, no directory yields a match, or the
// environment variable is unset and extra is empty.
func Resolve(name, pathEnv string, extra []string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range Dirs(pathEnv, extra) {
		candidate := filepath.Join(dir, name)
		if isExecutableRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutableRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
