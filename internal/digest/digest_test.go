package digest

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := Hash("def foo():\n    return 1\n")
	b := Hash("def foo():\n    return 1\n")
	if a != b {
		t.Fatalf("expected identical inputs to hash equal, got %q and %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashIgnoresWhitespace(t *testing.T) {
	if Hash("def foo():") != Hash("def  foo() :") {
		t.Fatalf("expected whitespace-only differences to hash equal")
	}
}

func TestHashDiffersOnContentChange(t *testing.T) {
	if Hash("def foo():") == Hash("def bar():") {
		t.Fatalf("expected different content to hash differently")
	}
}

func TestHashEmpty(t *testing.T) {
	if Hash("") == "" {
		t.Fatalf("expected non-empty digest for empty input")
	}
}
