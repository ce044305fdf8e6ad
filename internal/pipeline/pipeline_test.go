package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/toba/shellkit/internal/shellstate"
)

func newState() *shellstate.State {
	return shellstate.New(50)
}

func TestSplitOnPipeIgnoresQuoting(t *testing.T) {
	got := Split(`echo "a|b"`)
	want := []string{`echo "a`, `b"`}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Split = %#v, want %#v", got, want)
	}
}

func TestRunSingleStageBuiltin(t *testing.T) {
	var out bytes.Buffer
	err := Run("echo hello world", nil, &out, &bytes.Buffer{}, newState(), "")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello world\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunTwoBuiltinStagesSecondIgnoresFirstOutput(t *testing.T) {
	var out bytes.Buffer
	err := Run("echo a | echo b", nil, &out, &bytes.Buffer{}, newState(), "")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "b\n" {
		t.Errorf("output = %q, want %q", out.String(), "b\n")
	}
}

func TestRunBuiltinCdPersistsAcrossPipeline(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	defer os.Chdir(old)

	st := newState()
	var out bytes.Buffer
	err := Run("cd "+dir+" | pwd", nil, &out, &bytes.Buffer{}, st, "")
	if err != nil {
		t.Fatal(err)
	}
	wd, _ := os.Getwd()
	resolvedWd, _ := filepath.EvalSymlinks(wd)
	resolvedDir, _ := filepath.EvalSymlinks(dir)
	if resolvedWd != resolvedDir {
		t.Errorf("cwd after pipeline = %q, want %q", resolvedWd, resolvedDir)
	}
}

func TestRunEmptyStageIsInvalidPipeline(t *testing.T) {
	var errw bytes.Buffer
	err := Run("echo a ||", nil, &bytes.Buffer{}, &errw, newState(), "")
	if err != nil {
		t.Fatal(err)
	}
	if errw.String() != "Invalid pipeline\n" {
		t.Errorf("errw = %q", errw.String())
	}
}

func TestRunWhitespaceOnlySingleStageIsSilentlySkipped(t *testing.T) {
	var out, errw bytes.Buffer
	err := Run("   ", nil, &out, &errw, newState(), "")
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 || errw.Len() != 0 {
		t.Errorf("expected no output, got stdout=%q stderr=%q", out.String(), errw.String())
	}
}

func TestRunExternalPipeline(t *testing.T) {
	dir := t.TempDir()
	catEcho := filepath.Join(dir, "srctool")
	if err := os.WriteFile(catEcho, []byte("#!/bin/sh\necho piped-data\n"), 0755); err != nil {
		t.Fatal(err)
	}
	upper := filepath.Join(dir, "dsttool")
	if err := os.WriteFile(upper, []byte("#!/bin/sh\ncat | tr a-z A-Z\n"), 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Run("srctool | dsttool", nil, &out, &bytes.Buffer{}, newState(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "PIPED-DATA\n" {
		t.Errorf("output = %q", out.String())
	}
}
