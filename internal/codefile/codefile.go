// Package codefile reads local files referenced by issue locations and
// extracts range-bounded code from them. Reads never surface errors: a file
// that cannot be resolved or read yields a handle that reports nothing
// readable, and callers turn that into existence flags on their output.
package codefile

import (
	"os"
	"strings"

	"github.com/scanlens/scanlens/internal/issue"
)

// File is a lazily materialised view of one local file's content.
// The zero value behaves as an unreadable file.
type File struct {
	content string
	lines   []string
	ok      bool
}

// From reads the file identified by uri. Any read failure (missing file,
// permission error) results in an unreadable handle, not an error.
func From(uri string) *File {
	path := URIToPath(uri)
	if path == "" {
		return &File{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &File{}
	}
	return FromContent(string(data))
}

// FromContent wraps already-read text in a File. Used for live-analysis
// input files whose content comes from the engine rather than from disk.
func FromContent(content string) *File {
	return &File{
		content: content,
		lines:   strings.Split(content, "\n"),
		ok:      true,
	}
}

// Content returns the whole file content. The second return value is false
// when the file could not be read.
func (f *File) Content() (string, bool) {
	if f == nil || !f.ok {
		return "", false
	}
	return f.content, true
}

// CodeAt extracts the exact substring spanning (StartLine,StartOffset) to
// (EndLine,EndOffset), including intermediate full lines. Lines are 1-based,
// offsets 0-based. The whole-file sentinel (both lines 0) returns the full
// content. Any out-of-bounds range returns ok=false instead of panicking.
func (f *File) CodeAt(r *issue.TextRange) (string, bool) {
	if f == nil || !f.ok || r == nil {
		return "", false
	}
	if r.WholeFile() {
		return f.content, true
	}
	if r.StartLine < 1 || r.EndLine < r.StartLine || r.EndLine > len(f.lines) {
		return "", false
	}
	if r.StartOffset < 0 || r.EndOffset < 0 {
		return "", false
	}

	first := f.lines[r.StartLine-1]
	if r.StartOffset > len(first) {
		return "", false
	}

	if r.StartLine == r.EndLine {
		if r.EndOffset < r.StartOffset || r.EndOffset > len(first) {
			return "", false
		}
		return first[r.StartOffset:r.EndOffset], true
	}

	last := f.lines[r.EndLine-1]
	if r.EndOffset > len(last) {
		return "", false
	}

	parts := make([]string, 0, r.EndLine-r.StartLine+1)
	parts = append(parts, first[r.StartOffset:])
	for i := r.StartLine; i < r.EndLine-1; i++ {
		parts = append(parts, f.lines[i])
	}
	parts = append(parts, last[:r.EndOffset])
	return strings.Join(parts, "\n"), true
}

// Cache memoizes file reads for the duration of one reconciliation pass so
// that a flow touching the same file many times costs a single read. It is
// scoped to one request and is not safe for concurrent mutation.
type Cache struct {
	files map[string]*File
}

// NewCache returns an empty request-scoped cache.
func NewCache() *Cache {
	return &Cache{files: make(map[string]*File)}
}

// Get returns the handle for uri, reading the file on first use only.
func (c *Cache) Get(uri string) *File {
	if f, ok := c.files[uri]; ok {
		return f
	}
	f := From(uri)
	c.files[uri] = f
	return f
}
