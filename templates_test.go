package mdblog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mapSource serves templates from memory.
type mapSource map[string]string

func (m mapSource) LoadTemplate(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", errors.New("missing " + name)
	}
	return text, nil
}

// ---------------------------------------------------------------------------
// TestDefaultTemplates - Embedded layout
// ---------------------------------------------------------------------------

func TestDefaultTemplates(t *testing.T) {
	t.Parallel()

	tpl, err := DefaultTemplates()
	if err != nil {
		t.Fatalf("DefaultTemplates() error = %v", err)
	}
	site := Site{Title: "Field <Notes>", Description: "A blog"}

	t.Run("index lists posts in given order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := tpl.RenderIndex(&buf, IndexPage{
			Site: site,
			Posts: []Post{
				{Slug: "new", Title: "New", Date: "2024-02-02", Excerpt: "Fresh."},
				{Slug: "old", Title: "Old", Date: "2024-01-01"},
			},
			URLs: StaticURLs{},
		})
		if err != nil {
			t.Fatalf("RenderIndex() error = %v", err)
		}
		out := buf.String()

		for _, want := range []string{`href="/blog/new.html"`, `href="/blog/old.html"`, "Fresh.", "Field &lt;Notes&gt;"} {
			if !strings.Contains(out, want) {
				t.Errorf("index missing %q", want)
			}
		}
		if strings.Index(out, "/blog/new.html") > strings.Index(out, "/blog/old.html") {
			t.Error("index does not keep post order")
		}
	})

	t.Run("empty index", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := tpl.RenderIndex(&buf, IndexPage{Site: site, URLs: LiveURLs{}}); err != nil {
			t.Fatalf("RenderIndex() error = %v", err)
		}
		if !strings.Contains(buf.String(), "No posts yet.") {
			t.Errorf("empty index = %q", buf.String())
		}
	})

	t.Run("post content is not escaped, title is", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := tpl.RenderPost(&buf, PostPage{
			Site: site,
			Post: Post{Slug: "x", Title: "<Tags> & more", Date: "2024-01-01", Content: "<p>Body <em>here</em></p>"},
			URLs: LiveURLs{},
		})
		if err != nil {
			t.Fatalf("RenderPost() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "<p>Body <em>here</em></p>") {
			t.Error("post body was escaped")
		}
		if !strings.Contains(out, "&lt;Tags&gt; &amp; more") {
			t.Error("post title was not escaped")
		}
		if !strings.Contains(out, `<meta name="description" content="A blog">`) {
			t.Error("missing description meta")
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewHTMLTemplates - Custom sources
// ---------------------------------------------------------------------------

func TestNewHTMLTemplates(t *testing.T) {
	t.Parallel()

	t.Run("custom layout", func(t *testing.T) {
		t.Parallel()

		tpl, err := NewHTMLTemplates(mapSource{
			"base":  `[{{block "content" .}}{{end}}]`,
			"index": `{{define "content"}}{{len .Posts}} posts{{end}}`,
			"post":  `{{define "content"}}{{.Post.Title}}@{{.URLs.Post .Post.Slug}}{{end}}`,
		})
		if err != nil {
			t.Fatalf("NewHTMLTemplates() error = %v", err)
		}

		var buf bytes.Buffer
		if err := tpl.RenderIndex(&buf, IndexPage{Posts: make([]Post, 3), URLs: LiveURLs{}}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "[3 posts]" {
			t.Errorf("index = %q", buf.String())
		}

		buf.Reset()
		if err := tpl.RenderPost(&buf, PostPage{Post: Post{Slug: "a", Title: "A"}, URLs: StaticURLs{}}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "[A@/blog/a.html]" {
			t.Errorf("post = %q", buf.String())
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTMLTemplates(mapSource{"base": "x", "index": "y"})
		if !errors.Is(err, ErrTemplateParse) {
			t.Errorf("error = %v, want ErrTemplateParse", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTMLTemplates(mapSource{"base": "x", "index": "{{", "post": "z"})
		if !errors.Is(err, ErrTemplateParse) {
			t.Errorf("error = %v, want ErrTemplateParse", err)
		}
	})

	t.Run("execution error writes nothing", func(t *testing.T) {
		t.Parallel()

		tpl, err := NewHTMLTemplates(mapSource{
			"base":  `before {{block "content" .}}{{end}}`,
			"index": `{{define "content"}}{{.Missing}}{{end}}`,
			"post":  `{{define "content"}}{{end}}`,
		})
		if err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		err = tpl.RenderIndex(&buf, IndexPage{URLs: LiveURLs{}})
		if !errors.Is(err, ErrTemplateRender) {
			t.Errorf("error = %v, want ErrTemplateRender", err)
		}
		if buf.Len() != 0 {
			t.Errorf("partial output written: %q", buf.String())
		}
	})
}

func TestNewTemplatesFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	override := `{{define "content"}}<p>custom index</p>{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	tpl, err := NewTemplatesFromDir(dir)
	if err != nil {
		t.Fatalf("NewTemplatesFromDir() error = %v", err)
	}

	var buf bytes.Buffer
	if err := tpl.RenderIndex(&buf, IndexPage{Site: Site{Title: "T"}, URLs: LiveURLs{}}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "custom index") || !strings.Contains(out, "<!DOCTYPE html>") {
		t.Errorf("override not combined with embedded base: %q", out)
	}

	if _, err := NewTemplatesFromDir(filepath.Join(dir, "absent")); err == nil {
		t.Error("expected error for missing template directory")
	}
}
