package fileutil_test

// Notes:
// - Permission-denied branches are not tested: they depend on the user
//   running the tests (root ignores mode bits).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-mdblog/internal/fileutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Path classification
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "x")

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "x")

	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
	if fileutil.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestCopyTree - Recursive copy
// ---------------------------------------------------------------------------

func TestCopyTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out", "static")

	writeFile(t, filepath.Join(src, "css", "style.css"), "body{}")
	writeFile(t, filepath.Join(src, "images", "post", "cat.png"), "PNG")
	writeFile(t, filepath.Join(src, "robots.txt"), "User-agent: *")
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}

	files := map[string]string{
		"css/style.css":       "body{}",
		"images/post/cat.png": "PNG",
		"robots.txt":          "User-agent: *",
	}
	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}

	if !fileutil.DirExists(filepath.Join(dst, "empty")) {
		t.Error("empty directory not copied")
	}
}

func TestCopyTree_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("CopyTree() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f.txt")
		writeFile(t, file, "x")

		err := fileutil.CopyTree(file, t.TempDir())
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("CopyTree() error = %v, want ErrNotDirectory", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResetDir - Clean output directory
// ---------------------------------------------------------------------------

func TestResetDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "site")
	writeFile(t, filepath.Join(dir, "stale", "old.html"), "old")

	if err := fileutil.ResetDir(dir); err != nil {
		t.Fatalf("ResetDir() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ResetDir() left %d entries, want 0", len(entries))
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"mdblog", false},
		{"my-site", false},
		{"./mdblog.yaml", true},
		{"../shared/site.yaml", true},
		{"/etc/mdblog.yaml", true},
		{`C:\sites\blog.yaml`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
