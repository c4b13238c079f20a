package mdblog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// ImagesDir is the folder under the static directory holding one image
// folder per post.
const ImagesDir = "images"

// placeholderBody follows the heading of a scaffolded post.
const placeholderBody = "Add your content here."

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, replaces every run of characters outside
// [a-z0-9] with one hyphen, and trims leading and trailing hyphens.
func Slugify(title string) string {
	return strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// ScaffoldOptions describes a post to create.
type ScaffoldOptions struct {
	PostsDir  string
	StaticDir string
	Title     string
	// Now stamps the post date. Zero uses the current time.
	Now time.Time
}

// Scaffold describes a created post.
type Scaffold struct {
	Slug     string
	PostPath string
	ImageDir string
	// ImageDirExisted is true when the image folder was already there.
	ImageDirExisted bool
}

// scaffoldFrontMatter is written at the top of a new post.
type scaffoldFrontMatter struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// NewPost creates a post source and its image folder. An existing post is
// never overwritten: ErrPostExists is returned instead.
func NewPost(opts ScaffoldOptions) (*Scaffold, error) {
	slug := Slugify(opts.Title)
	if slug == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptySlug, opts.Title)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	header, err := yamlutil.FrontMatter(scaffoldFrontMatter{
		Title: opts.Title,
		Date:  now.Format(dateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding front-matter: %w", err)
	}
	content := string(header) + "\n# " + opts.Title + "\n\n" + placeholderBody + "\n"

	if err := os.MkdirAll(opts.PostsDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating posts directory: %w", err)
	}

	s := &Scaffold{
		Slug:     slug,
		PostPath: filepath.Join(opts.PostsDir, slug+PostExt),
		ImageDir: filepath.Join(opts.StaticDir, ImagesDir, slug),
	}

	// A refused scaffold creates nothing. writeNewFile
	// still creates exclusively.
	if _, err := os.Lstat(s.PostPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrPostExists, s.PostPath)
	}

	s.ImageDirExisted = fileutil.DirExists(s.ImageDir)
	if err := os.MkdirAll(s.ImageDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	if err := writeNewFile(s.PostPath, content); err != nil {
		if !s.ImageDirExisted {
			_ = os.Remove(s.ImageDir)
		}
		return nil, err
	}

	return s, nil
}

// writeNewFile creates path exclusively and writes content to it. On a
// write failure the file is removed.
func writeNewFile(path, content string) error {
	// #nosec G302 G304 -- post sources are meant to be readable; path built from slug
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileutil.FilePermissions)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrPostExists, path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A partial file would block every retry with ErrPostExists.
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
