package mdblog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdblog/internal/pipeline"
)

// FrontMatterParser splits a post source into metadata and Markdown body.
// A source without front-matter yields empty metadata and the whole input
// as body.
type FrontMatterParser interface {
	Parse(r io.Reader) (map[string]any, []byte, error)
}

// HTMLConverter renders Markdown to an HTML fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// PostLister lists every post, sorted newest first.
type PostLister interface {
	LoadAll(ctx context.Context) ([]Post, error)
}

// PostLoader lists posts and loads a single post by slug.
type PostLoader interface {
	PostLister
	LoadOne(ctx context.Context, slug string) (Post, bool, error)
}

// Compile-time interface implementation checks.
var (
	_ FrontMatterParser = pipeline.DelimitedFrontMatter{}
	_ HTMLConverter     = (*pipeline.GoldmarkConverter)(nil)
	_ PostLoader        = (*Loader)(nil)
)

// Loader reads post sources from a directory and renders them.
// It holds no per-call state and is safe for concurrent use.
type Loader struct {
	dir         string
	frontMatter FrontMatterParser
	converter   HTMLConverter
	imageBase   string
	skipWriter  io.Writer // non-nil switches malformed sources to skip-and-warn
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFrontMatterParser replaces the default delimited front-matter parser.
func WithFrontMatterParser(p FrontMatterParser) LoaderOption {
	return func(l *Loader) {
		if p != nil {
			l.frontMatter = p
		}
	}
}

// WithHTMLConverter replaces the default Goldmark converter.
func WithHTMLConverter(c HTMLConverter) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.converter = c
		}
	}
}

// WithImageBase sets the site-rooted folder that relative src values are
// resolved against. Defaults to "/static/images".
func WithImageBase(base string) LoaderOption {
	return func(l *Loader) {
		if base != "" {
			l.imageBase = base
		}
	}
}

// WithSkipMalformed makes LoadAll omit sources whose front-matter cannot be
// decoded, writing one warning line per skipped file to w. Without it, a
// malformed source aborts the load.
func WithSkipMalformed(w io.Writer) LoaderOption {
	return func(l *Loader) {
		l.skipWriter = w
	}
}

// NewLoader creates a Loader for the posts in dir.
func NewLoader(dir string, opts ...LoaderOption) *Loader {
	l := &Loader{
		dir:         dir,
		frontMatter: pipeline.DelimitedFrontMatter{},
		converter:   pipeline.NewGoldmarkConverter(pipeline.GoldmarkOptions{RawHTML: true}),
		imageBase:   pipeline.DefaultImageBase,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Dir returns the posts directory.
func (l *Loader) Dir() string {
	return l.dir
}

// LoadAll renders every "*.md" file directly inside the posts directory,
// sorted by date descending. A missing directory yields no posts.
func (l *Loader) LoadAll(ctx context.Context) ([]Post, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Post{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReadPosts, err)
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slug, ok := postSlug(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		if !isRegularFile(path, entry) {
			continue
		}

		post, err := l.load(ctx, path, slug)
		if err != nil {
			if l.skip(err, path) {
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}

	SortPosts(posts)
	return posts, nil
}

// LoadOne renders the post named slug. found is false, with a nil error,
// when no such post exists or slug cannot name a file in the directory.
func (l *Loader) LoadOne(ctx context.Context, slug string) (post Post, found bool, err error) {
	if !ValidSlug(slug) {
		return Post{}, false, nil
	}

	path := filepath.Join(l.dir, slug+PostExt)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, false, nil
		}
		return Post{}, false, fmt.Errorf("%w: %v", ErrReadPosts, err)
	}
	if !info.Mode().IsRegular() {
		return Post{}, false, nil
	}

	post, err = l.load(ctx, path, slug)
	if err != nil {
		if l.skip(err, path) {
			return Post{}, false, nil
		}
		return Post{}, false, err
	}
	return post, true, nil
}

// load runs one source file through the post pipeline.
func (l *Loader) load(ctx context.Context, path, slug string) (Post, error) {
	f, err := os.Open(path) // #nosec G304 -- path built from the posts directory listing
	if err != nil {
		return Post{}, fmt.Errorf("%w: %v", ErrReadPosts, err)
	}
	defer f.Close()

	meta, body, err := l.frontMatter.Parse(f)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: %v", ErrMalformedFrontMatter, path, err)
	}

	content, err := l.converter.ToHTML(ctx, string(body))
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: %w", ErrRenderPost, path, err)
	}
	content = pipeline.RewriteImagePaths(content, l.imageBase, slug)

	excerpt, err := pipeline.Excerpt(content, pipeline.DefaultExcerptLength)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: excerpt: %v", ErrRenderPost, path, err)
	}

	return Post{
		Slug:    slug,
		Title:   metaString(meta, "title", DefaultTitle),
		Date:    metaString(meta, "date", DefaultDate),
		Content: content,
		Excerpt: excerpt,
	}, nil
}

// skip reports whether err should drop the source instead of failing,
// writing the warning when it does.
func (l *Loader) skip(err error, path string) bool {
	if l.skipWriter == nil || !errors.Is(err, ErrMalformedFrontMatter) {
		return false
	}
	fmt.Fprintf(l.skipWriter, "warning: skipping %s: %v\n", path, err)
	return true
}

// postSlug returns the slug for a post filename. Names LoadOne would
// refuse are not listed either.
func postSlug(name string) (string, bool) {
	if !strings.HasSuffix(name, PostExt) {
		return "", false
	}
	slug := strings.TrimSuffix(name, PostExt)
	return slug, ValidSlug(slug)
}

// isRegularFile reports whether a directory entry is a regular file,
// following symlinks.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
