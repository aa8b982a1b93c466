package codefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scanlens/scanlens/internal/issue"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestFromMissingFile(t *testing.T) {
	f := From("file:///definitely/not/here.py")
	if _, ok := f.Content(); ok {
		t.Fatalf("expected unreadable handle for missing file")
	}
	if _, ok := f.CodeAt(&issue.TextRange{StartLine: 1, EndLine: 1, EndOffset: 1}); ok {
		t.Fatalf("expected CodeAt to fail on unreadable handle")
	}
}

func TestContentWholeFile(t *testing.T) {
	path := writeTempFile(t, "a.py", "import os\ndef foo():\n    pass\n")
	f := From(PathToURI(path))
	content, ok := f.Content()
	if !ok {
		t.Fatalf("expected readable file")
	}
	if content != "import os\ndef foo():\n    pass\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestCodeAt(t *testing.T) {
	f := FromContent("import os\ndef foo():\n    return os\n")

	tests := []struct {
		name   string
		rng    issue.TextRange
		want   string
		wantOK bool
	}{
		{
			name:   "single line range",
			rng:    issue.TextRange{StartLine: 2, StartOffset: 0, EndLine: 2, EndOffset: 10},
			want:   "def foo():",
			wantOK: true,
		},
		{
			name:   "mid line offsets",
			rng:    issue.TextRange{StartLine: 2, StartOffset: 4, EndLine: 2, EndOffset: 7},
			want:   "foo",
			wantOK: true,
		},
		{
			name:   "multi line range",
			rng:    issue.TextRange{StartLine: 1, StartOffset: 7, EndLine: 3, EndOffset: 4},
			want:   "os\ndef foo():\n    ",
			wantOK: true,
		},
		{
			name:   "whole file sentinel",
			rng:    issue.TextRange{},
			want:   "import os\ndef foo():\n    return os\n",
			wantOK: true,
		},
		{
			name: "line past end of file",
			rng:  issue.TextRange{StartLine: 9, EndLine: 9, EndOffset: 1},
		},
		{
			name: "offset past end of line",
			rng:  issue.TextRange{StartLine: 2, StartOffset: 0, EndLine: 2, EndOffset: 99},
		},
		{
			name: "end before start",
			rng:  issue.TextRange{StartLine: 3, EndLine: 2, EndOffset: 1},
		},
		{
			name: "negative offset",
			rng:  issue.TextRange{StartLine: 2, StartOffset: -1, EndLine: 2, EndOffset: 3},
		},
		{
			name: "zero start line only is not the sentinel",
			rng:  issue.TextRange{StartLine: 0, EndLine: 2, EndOffset: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.CodeAt(&tt.rng)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCodeAtNilRange(t *testing.T) {
	f := FromContent("one\n")
	if _, ok := f.CodeAt(nil); ok {
		t.Fatalf("expected nil range to fail")
	}
}

func TestCacheReadsOncePerURI(t *testing.T) {
	path := writeTempFile(t, "a.py", "original\n")
	uri := PathToURI(path)

	cache := NewCache()
	first := cache.Get(uri)
	if content, ok := first.Content(); !ok || content != "original\n" {
		t.Fatalf("expected first read to see original content, got %q ok=%v", content, ok)
	}

	// A second lookup must return the memoized handle, not re-read the file.
	if err := os.WriteFile(path, []byte("mutated\n"), 0644); err != nil {
		t.Fatalf("failed to mutate fixture: %v", err)
	}
	second := cache.Get(uri)
	if second != first {
		t.Fatalf("expected memoized handle on second lookup")
	}
	if content, _ := second.Content(); content != "original\n" {
		t.Fatalf("expected cached content, got %q", content)
	}
}

func TestURIHelpers(t *testing.T) {
	if got := JoinURI("file:///ws", "src/a.py"); got != "file:///ws/src/a.py" {
		t.Fatalf("unexpected join result %q", got)
	}
	if got := JoinURI("file:///ws/", "/src/a.py"); got != "file:///ws/src/a.py" {
		t.Fatalf("unexpected join result %q", got)
	}
	if got := URIToPath("file:///ws/src/a.py"); got != filepath.FromSlash("/ws/src/a.py") {
		t.Fatalf("unexpected path %q", got)
	}
	if got := URIToPath("https://example.com/a.py"); got != "" {
		t.Fatalf("expected non-file scheme to be unresolvable, got %q", got)
	}
	if got := PathToURI("file:///ws/a.py"); got != "file:///ws/a.py" {
		t.Fatalf("expected URI passthrough, got %q", got)
	}
}
