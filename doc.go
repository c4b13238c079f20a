// Package mdblog renders a directory of Markdown posts into a blog, either
// live over HTTP or as a pre-built static site.
//
// # Quick Start
//
// Load posts, pick the templates, and serve:
//
//	loader := mdblog.NewLoader("posts")
//	tpl, err := mdblog.DefaultTemplates()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv := mdblog.NewServer(loader, tpl, mdblog.WithStaticDir("static"))
//	log.Fatal(srv.ListenAndServe(ctx, ":8000"))
//
// Or build a static tree:
//
//	b := mdblog.NewBuilder(loader, tpl, mdblog.BuildOptions{
//	    OutputDir: "_site",
//	    StaticDir: "static",
//	})
//	result, err := b.Build(ctx)
//
// # Post Sources
//
// Every "*.md" file directly inside the posts directory is one post. Its
// slug is the filename stem. An optional front-matter block supplies the
// title and date:
//
//	---
//	title: Hello World
//	date: 2024-01-02
//	---
//	Body in Markdown.
//
// Missing fields default to "Untitled" and "1970-01-01". Dates are kept as
// written and posts are ordered by comparing them as strings, newest first.
//
// # Post Pipeline
//
// Each post goes through the same stages in both modes:
//
//  1. Front-matter split (adrg/frontmatter)
//  2. Markdown to HTML via Goldmark (GFM, footnotes, chroma code classes)
//  3. Relative src="..." values rewritten to /static/images/{slug}/...
//  4. Excerpt extraction from the first paragraph
//
// Nothing is cached: every request in live mode reads the files again.
//
// # Links
//
// Live and static output differ only in link shape. LiveURLs links posts as
// /blog/{slug}; StaticURLs links them as /blog/{slug}.html so the tree can
// be served by any file server.
//
// # Templates
//
// Pages are rendered with html/template. The embedded defaults (base, index,
// post) can be overridden per file with NewTemplatesFromDir.
package mdblog
