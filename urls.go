package mdblog

import "strings"

// Site-rooted path prefixes shared by both link strategies.
const (
	BlogPrefix   = "/blog/"
	StaticPrefix = "/static/"
)

// URLBuilder produces the links a page template emits.
type URLBuilder interface {
	Index() string
	Post(slug string) string
	Static(path string) string
}

// LiveURLs links pages as served by Server.
type LiveURLs struct{}

// Index returns "/".
func (LiveURLs) Index() string { return "/" }

// Post returns "/blog/{slug}".
func (LiveURLs) Post(slug string) string { return BlogPrefix + slug }

// Static returns "/static/{path}".
func (LiveURLs) Static(path string) string { return staticURL(path) }

// StaticURLs links pages as written by Builder.
type StaticURLs struct{}

// Index returns "/".
func (StaticURLs) Index() string { return "/" }

// Post returns "/blog/{slug}.html".
func (StaticURLs) Post(slug string) string { return BlogPrefix + slug + ".html" }

// Static returns "/static/{path}".
func (StaticURLs) Static(path string) string { return staticURL(path) }

func staticURL(path string) string {
	return StaticPrefix + strings.TrimPrefix(path, "/")
}

var (
	_ URLBuilder = LiveURLs{}
	_ URLBuilder = StaticURLs{}
)
