package mdblog

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestMetaString - Front-matter scalar normalization
// ---------------------------------------------------------------------------

func TestMetaString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta map[string]any
		want string
	}{
		{"absent key", map[string]any{}, "fallback"},
		{"null value", map[string]any{"k": nil}, "fallback"},
		{"string", map[string]any{"k": "Hello"}, "Hello"},
		{"empty string kept", map[string]any{"k": ""}, ""},
		{"integer", map[string]any{"k": 2024}, "2024"},
		{"boolean", map[string]any{"k": true}, "true"},
		{"date only timestamp", map[string]any{"k": time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, "2024-01-02"},
		{"timestamp with time", map[string]any{"k": time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)}, "2024-01-02T15:04:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := metaString(tt.meta, "k", "fallback"); got != tt.want {
				t.Errorf("metaString() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSortPosts - Date descending, stable on ties
// ---------------------------------------------------------------------------

func TestSortPosts(t *testing.T) {
	t.Parallel()

	posts := []Post{
		{Slug: "a", Date: "2024-01-01"},
		{Slug: "b", Date: "2024-03-01"},
		{Slug: "c", Date: "2024-01-01"},
		{Slug: "d", Date: "not a date"},
		{Slug: "e", Date: "2024-03-01"},
	}

	SortPosts(posts)

	want := []string{"d", "b", "e", "a", "c"}
	for i, slug := range want {
		if posts[i].Slug != slug {
			t.Fatalf("position %d = %q, want %q (order %v)", i, posts[i].Slug, slug, slugs(posts))
		}
	}
}

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

// ---------------------------------------------------------------------------
// TestValidSlug - Slugs confined to the posts directory
// ---------------------------------------------------------------------------

func TestValidSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug string
		want bool
	}{
		{"hello-world", true},
		{"2024_notes.v2", true},
		{"", false},
		{"..", false},
		{"../secret", false},
		{"a/b", false},
		{`a\b`, false},
		{"a\x00b", false},
		{".draft", false},
		{"v1..2", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()

			if got := ValidSlug(tt.slug); got != tt.want {
				t.Errorf("ValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestPost_HTML(t *testing.T) {
	t.Parallel()

	p := Post{Content: "<p>hi</p>"}
	if got := string(p.HTML()); got != "<p>hi</p>" {
		t.Errorf("HTML() = %q, want %q", got, "<p>hi</p>")
	}
}
