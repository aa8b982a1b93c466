package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestFindRepositoryRootFromSubfolder(t *testing.T) {
	root := t.TempDir()
	if _, err := gogit.PlainInit(root, false); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	sub := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subfolder: %v", err)
	}

	got, err := FindRepositoryRoot(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedGot, _ := filepath.EvalSymlinks(got)
	if resolvedGot != resolvedRoot {
		t.Fatalf("expected root %q, got %q", resolvedRoot, resolvedGot)
	}
}

func TestFindRepositoryRootOutsideRepository(t *testing.T) {
	if _, err := FindRepositoryRoot(t.TempDir()); err == nil {
		t.Fatalf("expected an error outside a repository")
	}
}

func TestFindRepositoryRootEmptyInput(t *testing.T) {
	if _, err := FindRepositoryRoot(""); err == nil {
		t.Fatalf("expected an error for empty source folder")
	}
}

func TestWorkspaceFolderURI(t *testing.T) {
	root := t.TempDir()
	if _, err := gogit.PlainInit(root, false); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	uri, err := WorkspaceFolderURI(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(uri, "file://") {
		t.Fatalf("expected a file URI, got %q", uri)
	}
}
