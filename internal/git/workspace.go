// Package git resolves workspace folders for taint records. A taint record
// anchors its locations with workspace-relative paths, so when the caller
// does not name a workspace folder explicitly we discover one by walking up
// from a local path to the enclosing git repository root.
package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/scanlens/scanlens/internal/codefile"
)

// FindRepositoryRoot walks up from sourceFolder until a directory opens as a
// git repository.
func FindRepositoryRoot(sourceFolder string) (string, error) {
	if sourceFolder == "" {
		return "", fmt.Errorf("source folder is not set")
	}
	if abs, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = abs
	}

	for {
		if _, err := gogit.PlainOpen(sourceFolder); err == nil {
			return sourceFolder, nil
		}

		parent := filepath.Dir(sourceFolder)
		if parent == sourceFolder {
			break
		}
		sourceFolder = parent
	}

	return "", fmt.Errorf("%q is not inside a git repository", sourceFolder)
}

// WorkspaceFolderURI returns the file URI of the repository root enclosing
// path, suitable for joining with taint-record relative paths.
func WorkspaceFolderURI(path string) (string, error) {
	root, err := FindRepositoryRoot(path)
	if err != nil {
		return "", fmt.Errorf("resolve workspace folder: %w", err)
	}
	return codefile.PathToURI(root), nil
}
