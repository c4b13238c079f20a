package mdblog

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alnah/go-mdblog/internal/assets"
)

// Site holds site-wide values shared by every page.
type Site struct {
	Title       string
	Description string
}

// IndexPage is the data passed to the index template.
type IndexPage struct {
	Site  Site
	Posts []Post
	URLs  URLBuilder
}

// PostPage is the data passed to the post template.
type PostPage struct {
	Site Site
	Post Post
	URLs URLBuilder
}

// Templates renders the two page kinds of a blog.
type Templates interface {
	RenderIndex(w io.Writer, page IndexPage) error
	RenderPost(w io.Writer, page PostPage) error
}

// TemplateSource loads raw template text by name ("base", "index", "post").
type TemplateSource interface {
	LoadTemplate(name string) (string, error)
}

// HTMLTemplates renders pages with html/template. Each page template is
// parsed on top of its own copy of the base layout.
type HTMLTemplates struct {
	index *template.Template
	post  *template.Template
}

var _ Templates = (*HTMLTemplates)(nil)

// NewHTMLTemplates parses the base, index and post templates from src.
func NewHTMLTemplates(src TemplateSource) (*HTMLTemplates, error) {
	baseText, err := src.LoadTemplate(assets.TemplateBase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	base, err := template.New(assets.TemplateBase).Parse(baseText)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, assets.TemplateBase, err)
	}

	index, err := parsePage(src, base, assets.TemplateIndex)
	if err != nil {
		return nil, err
	}
	post, err := parsePage(src, base, assets.TemplatePost)
	if err != nil {
		return nil, err
	}

	return &HTMLTemplates{index: index, post: post}, nil
}

// DefaultTemplates returns the embedded templates.
func DefaultTemplates() (*HTMLTemplates, error) {
	return NewHTMLTemplates(assets.NewEmbeddedLoader())
}

// NewTemplatesFromDir loads templates from dir, falling back to the
// embedded default for each file dir does not provide. An empty dir uses
// only the defaults.
func NewTemplatesFromDir(dir string) (*HTMLTemplates, error) {
	resolver, err := assets.NewResolver(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	return NewHTMLTemplates(resolver)
}

func parsePage(src TemplateSource, base *template.Template, name string) (*template.Template, error) {
	text, err := src.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}

	page, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	if _, err := page.New(name).Parse(text); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return page, nil
}

// RenderIndex writes the index page. Nothing is written on error.
func (t *HTMLTemplates) RenderIndex(w io.Writer, page IndexPage) error {
	return render(w, t.index, page)
}

// RenderPost writes a post page. Nothing is written on error.
func (t *HTMLTemplates) RenderPost(w io.Writer, page PostPage) error {
	return render(w, t.post, page)
}

func render(w io.Writer, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, assets.TemplateBase, data); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return nil
}
