package mdblog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdblog/internal/fileutil"
)

// Output layout.
const (
	IndexFile     = "index.html"
	BlogDir       = "blog"
	StaticOutDir  = "static"
	pageExtension = ".html"
)

// BuildOptions configures a static build.
type BuildOptions struct {
	// OutputDir is removed and recreated on every build.
	OutputDir string
	// StaticDir is copied to {OutputDir}/static when it exists.
	StaticDir string
	// Workers bounds concurrent post rendering. Zero or less uses GOMAXPROCS.
	Workers int
	// Site is passed to every page.
	Site Site
}

// BuildResult describes a finished build.
type BuildResult struct {
	OutputDir string
	// Posts is the number of post pages written.
	Posts int
	// Files lists the rendered pages, slash-separated and relative to
	// OutputDir, index first then posts in listing order.
	Files    []string
	Duration time.Duration
}

// Builder writes a blog as a static file tree.
type Builder struct {
	posts     PostLister
	templates Templates
	opts      BuildOptions
}

// NewBuilder creates a Builder.
func NewBuilder(posts PostLister, templates Templates, opts BuildOptions) *Builder {
	return &Builder{posts: posts, templates: templates, opts: opts}
}

// Build regenerates the output tree. Any failure aborts the build and is
// returned wrapped in ErrBuild; the output directory may then be partial.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	out := b.opts.OutputDir
	if out == "" {
		return nil, fmt.Errorf("%w: %w", ErrBuild, ErrEmptyOutputDir)
	}
	if err := b.checkOutputDir(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.ResetDir(out); err != nil {
		return nil, fmt.Errorf("%w: resetting %s: %v", ErrBuild, out, err)
	}

	if b.opts.StaticDir != "" && fileutil.DirExists(b.opts.StaticDir) {
		dst := filepath.Join(out, StaticOutDir)
		if err := fileutil.CopyTree(b.opts.StaticDir, dst); err != nil {
			return nil, fmt.Errorf("%w: copying %s: %v", ErrBuild, b.opts.StaticDir, err)
		}
	}

	posts, err := b.posts.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	urls := StaticURLs{}
	files := make([]string, 0, len(posts)+1)

	err = b.writePage(IndexFile, func(buf *bytes.Buffer) error {
		return b.templates.RenderIndex(buf, IndexPage{Site: b.opts.Site, Posts: posts, URLs: urls})
	})
	if err != nil {
		return nil, err
	}
	files = append(files, IndexFile)

	if err := os.MkdirAll(filepath.Join(out, BlogDir), fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers())
	for _, post := range posts {
		rel := path.Join(BlogDir, post.Slug+pageExtension)
		files = append(files, rel)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return b.writePage(rel, func(buf *bytes.Buffer) error {
				return b.templates.RenderPost(buf, PostPage{Site: b.opts.Site, Post: post, URLs: urls})
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BuildResult{
		OutputDir: out,
		Posts:     len(posts),
		Files:     files,
		Duration:  time.Since(start),
	}, nil
}

// writePage renders into memory and writes {OutputDir}/{rel}.
func (b *Builder) writePage(rel string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBuild, rel, err)
	}

	dst := filepath.Join(b.opts.OutputDir, filepath.FromSlash(rel))
	// #nosec G306 -- site pages are meant to be readable
	if err := os.WriteFile(dst, buf.Bytes(), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrBuild, dst, err)
	}
	return nil
}

// checkOutputDir refuses output directories whose reset would delete
// the sources: the working directory, a filesystem root, any directory
// containing the posts or static tree, or a directory inside the static tree.
func (b *Builder) checkOutputDir() error {
	out, err := filepath.Abs(b.opts.OutputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuild, err)
	}
	if wd, err := os.Getwd(); err == nil && out == wd {
		return fmt.Errorf("%w: %w: %s is the working directory", ErrBuild, ErrUnsafeOutputDir, b.opts.OutputDir)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("%w: %w: %s is a filesystem root", ErrBuild, ErrUnsafeOutputDir, b.opts.OutputDir)
	}

	sources := []string{b.opts.StaticDir}
	if d, ok := b.posts.(interface{ Dir() string }); ok {
		sources = append(sources, d.Dir())
	}
	for _, src := range sources {
		if src == "" {
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			continue
		}
		if within(out, abs) {
			return fmt.Errorf("%w: %w: %s contains %s", ErrBuild, ErrUnsafeOutputDir, b.opts.OutputDir, src)
		}
	}

	// The static tree is copied into the output; an output below it would
	// be copied into itself.
	if b.opts.StaticDir != "" {
		if static, err := filepath.Abs(b.opts.StaticDir); err == nil && within(static, out) {
			return fmt.Errorf("%w: %w: %s is inside %s", ErrBuild, ErrUnsafeOutputDir, b.opts.OutputDir, b.opts.StaticDir)
		}
	}
	return nil
}

// within reports whether target is dir or lies below it.
func within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (b *Builder) workers() int {
	if b.opts.Workers > 0 {
		return b.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}
