package mdblog

import (
	"fmt"
	"html/template"
	"slices"
	"strings"
	"time"
)

// Front-matter defaults.
const (
	DefaultTitle = "Untitled"
	DefaultDate  = "1970-01-01"
)

// PostExt is the extension of post source files.
const PostExt = ".md"

// dateLayout formats timestamps decoded from front-matter that carry no
// time of day.
const dateLayout = "2006-01-02"

// Post is one rendered blog post.
type Post struct {
	// Slug is the source filename without extension.
	Slug string
	// Title comes from front-matter, DefaultTitle when absent.
	Title string
	// Date is kept as written in front-matter and never parsed.
	Date string
	// Content is the rendered HTML body.
	Content string
	// Excerpt is the plain text of the first paragraph.
	Excerpt string
}

// HTML returns Content marked safe for html/template.
func (p Post) HTML() template.HTML {
	return template.HTML(p.Content) // #nosec G203 -- rendered from the author's own Markdown
}

// SortPosts orders posts by date, newest first. Equal dates keep their
// relative order.
func SortPosts(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		return strings.Compare(b.Date, a.Date)
	})
}

// ValidSlug reports whether slug can name a post file inside the posts
// directory. Hidden names (leading dot) are not posts.
func ValidSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, ".") || strings.Contains(slug, "..") {
		return false
	}
	return !strings.ContainsAny(slug, "/\\\x00")
}

// metaString reads a front-matter scalar as text, returning def when the
// key is absent or null.
func metaString(meta map[string]any, key, def string) string {
	v, ok := meta[key]
	if !ok || v == nil {
		return def
	}

	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		h, m, s := val.Clock()
		if h == 0 && m == 0 && s == 0 && val.Nanosecond() == 0 {
			return val.Format(dateLayout)
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
