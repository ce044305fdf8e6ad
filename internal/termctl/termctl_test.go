package termctl

import (
	"os"
	"testing"
)

func TestMakeRawOnNonTTYIsNoop(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	m, ok := MakeRaw(int(f.Fd()))
	if ok {
		t.Error("expected ok=false for a non-terminal fd")
	}
	m.Restore() // must not panic
}

func TestIsTTYFalseForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f.Fd()) {
		t.Error("expected a regular file to not be a tty")
	}
}

func TestSizeOnNonTTYReportsNotOK(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, _, ok := Size(int(f.Fd())); ok {
		t.Error("expected ok=false for a non-terminal fd")
	}
}
