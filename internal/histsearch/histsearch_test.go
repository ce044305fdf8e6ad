package histsearch

import "testing"

func TestSearchFindsMatchingLine(t *testing.T) {
	idx, err := New([]string{"git status", "git commit -m fix", "pwd", "echo hello"})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	hits, err := idx.Search("commit", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != 1 {
		t.Errorf("hits = %#v, want [1]", hits)
	}
}

func TestSearchEmptyQueryReturnsNoHits(t *testing.T) {
	idx, err := New([]string{"echo hi"})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	hits, err := idx.Search("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %#v, want none", hits)
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	idx, err := New([]string{"echo hi"})
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	hits, err := idx.Search("nonexistentterm", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %#v, want none", hits)
	}
}
