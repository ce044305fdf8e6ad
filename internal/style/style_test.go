package style

import "testing"

func TestDisabledStylesReturnPlainText(t *testing.T) {
	s := New(false)
	if got := s.Error("boom"); got != "boom" {
		t.Errorf("Error = %q", got)
	}
	if got := s.NotFound("nope"); got != "nope" {
		t.Errorf("NotFound = %q", got)
	}
	if got := s.Candidate("echo"); got != "echo" {
		t.Errorf("Candidate = %q", got)
	}
}

func TestEnabledStylesWrapText(t *testing.T) {
	s := New(true)
	if got := s.Error("boom"); got == "boom" {
		t.Error("expected styled output to differ from plain text")
	}
}
