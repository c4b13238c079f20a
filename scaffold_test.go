package mdblog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestSlugify - Title to filename
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"My First Post!", "my-first-post"},
		{"  Go 1.22: What's New?  ", "go-1-22-what-s-new"},
		{"already-slugged", "already-slugged"},
		{"Crème brûlée", "cr-me-br-l-e"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewPost - Post scaffolding
// ---------------------------------------------------------------------------

func TestNewPost(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)

	t.Run("creates post and image folder", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		opts := ScaffoldOptions{
			PostsDir:  filepath.Join(root, "posts"),
			StaticDir: filepath.Join(root, "static"),
			Title:     "My First Post!",
			Now:       now,
		}

		s, err := NewPost(opts)
		if err != nil {
			t.Fatalf("NewPost() error = %v", err)
		}
		if s.Slug != "my-first-post" {
			t.Errorf("Slug = %q", s.Slug)
		}
		if s.PostPath != filepath.Join(root, "posts", "my-first-post.md") {
			t.Errorf("PostPath = %q", s.PostPath)
		}
		if s.ImageDirExisted {
			t.Error("ImageDirExisted = true for a fresh folder")
		}
		if info, err := os.Stat(s.ImageDir); err != nil || !info.IsDir() {
			t.Errorf("image folder not created: %v", err)
		}

		content := readFile(t, s.PostPath)
		if !strings.HasPrefix(content, "---\n") {
			t.Errorf("content does not start with front-matter: %q", content)
		}
		if !strings.Contains(content, "# My First Post!\n\nAdd your content here.\n") {
			t.Errorf("content body = %q", content)
		}

		post, found, err := NewLoader(opts.PostsDir).LoadOne(context.Background(), s.Slug)
		if err != nil || !found {
			t.Fatalf("LoadOne() = found %v, err %v", found, err)
		}
		if post.Title != "My First Post!" || post.Date != "2024-03-05" {
			t.Errorf("loaded title/date = %q/%q", post.Title, post.Date)
		}
	})

	t.Run("existing post is not overwritten", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		postsDir := filepath.Join(root, "posts")
		writePost(t, postsDir, "my-first-post.md", "original")

		_, err := NewPost(ScaffoldOptions{PostsDir: postsDir, StaticDir: filepath.Join(root, "static"), Title: "My First Post!", Now: now})
		if !errors.Is(err, ErrPostExists) {
			t.Fatalf("NewPost() error = %v, want ErrPostExists", err)
		}
		if got := readFile(t, filepath.Join(postsDir, "my-first-post.md")); got != "original" {
			t.Errorf("post overwritten: %q", got)
		}
		if _, err := os.Stat(filepath.Join(root, "static", "images", "my-first-post")); !os.IsNotExist(err) {
			t.Errorf("image folder created for refused post: %v", err)
		}
	})

	t.Run("image folder failure leaves no post", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		postsDir := filepath.Join(root, "posts")
		staticDir := filepath.Join(root, "static")
		writePost(t, root, "static", "not a directory")

		opts := ScaffoldOptions{PostsDir: postsDir, StaticDir: staticDir, Title: "Trip", Now: now}
		if _, err := NewPost(opts); err == nil {
			t.Fatal("NewPost() error = nil, want image folder failure")
		}
		if _, err := os.Stat(filepath.Join(postsDir, "trip.md")); !os.IsNotExist(err) {
			t.Fatalf("post written despite failure: %v", err)
		}

		if err := os.Remove(staticDir); err != nil {
			t.Fatal(err)
		}
		if _, err := NewPost(opts); err != nil {
			t.Errorf("retry NewPost() error = %v", err)
		}
	})

	t.Run("existing image folder reported", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		staticDir := filepath.Join(root, "static")
		if err := os.MkdirAll(filepath.Join(staticDir, "images", "trip"), 0o750); err != nil {
			t.Fatal(err)
		}

		s, err := NewPost(ScaffoldOptions{PostsDir: filepath.Join(root, "posts"), StaticDir: staticDir, Title: "Trip", Now: now})
		if err != nil {
			t.Fatalf("NewPost() error = %v", err)
		}
		if !s.ImageDirExisted {
			t.Error("ImageDirExisted = false, want true")
		}
	})

	t.Run("empty slug", func(t *testing.T) {
		t.Parallel()

		_, err := NewPost(ScaffoldOptions{PostsDir: t.TempDir(), Title: "!!!"})
		if !errors.Is(err, ErrEmptySlug) {
			t.Errorf("NewPost() error = %v, want ErrEmptySlug", err)
		}
	})
}
