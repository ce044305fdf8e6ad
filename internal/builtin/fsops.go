package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/toba/shellkit/internal/shellstate"
)

// mkdir implements spec.md §4.D's `mkdir [-p] paths…`.
func mkdir(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	args, recursive := splitFlag(argv[1:], "-p")
	for _, path := range args {
		var err error
		if recursive {
			err = os.MkdirAll(path, 0755)
		} else {
			err = os.Mkdir(path, 0755)
		}
		if err != nil {
			fmt.Fprintf(errw, "mkdir: %s: %s\n", path, underlyingErr(err))
		}
	}
}

// rmdir implements spec.md §4.D's `rmdir paths…`.
func rmdir(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	for _, path := range argv[1:] {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(errw, "rmdir: %s: %s\n", path, underlyingErr(err))
		}
	}
}

// rm implements spec.md §4.D's `rm [-r|-R] [-f] paths…`.
func rm(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	args := argv[1:]
	recursive, force := false, false
	var paths []string
	for _, a := range args {
		switch a {
		case "-r", "-R":
			recursive = true
		case "-f":
			force = true
		case "-rf", "-fr":
			recursive, force = true, true
		default:
			paths = append(paths, a)
		}
	}

	for _, path := range paths {
		var err error
		if recursive {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil && !force {
			fmt.Fprintf(errw, "rm: %s: %s\n", path, underlyingErr(err))
		}
	}
}

// touch implements spec.md §4.D's `touch paths…` (O_CREAT without
// O_TRUNC; existing files keep their contents).
func touch(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	for _, path := range argv[1:] {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(errw, "touch: %s: %s\n", path, underlyingErr(err))
			continue
		}
		f.Close()
	}
}

// cp implements spec.md §4.D's `cp src dst`.
func cp(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	args := argv[1:]
	if len(args) != 2 {
		fmt.Fprintln(errw, "cp: missing file operand")
		return
	}
	src, dst := args[0], args[1]

	in, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(errw, "cp: %s: %s\n", src, underlyingErr(err))
		return
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(errw, "cp: %s: %s\n", dst, underlyingErr(err))
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		fmt.Fprintf(errw, "cp: %s: %s\n", dst, underlyingErr(err))
	}
}

// mv implements spec.md §4.D's `mv src dst` (atomic rename, no
// cross-device fallback).
func mv(argv []string, _ io.Reader, _, errw io.Writer, _ *shellstate.State) {
	args := argv[1:]
	if len(args) != 2 {
		fmt.Fprintln(errw, "mv: missing file operand")
		return
	}
	if err := os.Rename(args[0], args[1]); err != nil {
		fmt.Fprintf(errw, "mv: %s: %s\n", args[0], underlyingErr(err))
	}
}

// splitFlag partitions args into (non-flag args, whether flag appeared).
func splitFlag(args []string, flag string) (rest []string, present bool) {
	for _, a := range args {
		if a == flag {
			present = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, present
}
