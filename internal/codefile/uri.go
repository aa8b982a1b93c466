package codefile

import (
	"path/filepath"
	"strings"
)

// URIToPath converts a file URI to a local filesystem path. Non-file schemes
// yield an empty path, which callers treat as unresolvable.
func URIToPath(uri string) string {
	if uri == "" {
		return ""
	}
	if !strings.Contains(uri, "://") {
		return filepath.FromSlash(uri)
	}
	if !strings.HasPrefix(uri, "file://") {
		return ""
	}
	return filepath.FromSlash(strings.TrimPrefix(uri, "file://"))
}

// PathToURI converts a local path to a file URI. Paths that already carry a
// scheme are returned unchanged; relative paths are resolved first.
func PathToURI(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return "file://" + slashed
}

// JoinURI appends a relative path to a folder URI using forward slashes
// regardless of the host OS separator.
func JoinURI(folderURI, relPath string) string {
	return strings.TrimRight(folderURI, "/") + "/" + strings.TrimLeft(filepath.ToSlash(relPath), "/")
}
